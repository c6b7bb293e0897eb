package assets

// AssetLoader defines the contract for loading LaTeX document templates.
// Implementations may load from embedded assets, the filesystem, or any
// other backing store.
type AssetLoader interface {
	// LoadTemplate loads a LaTeX template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
