package ports

// SourceLoader defines how the runtime retrieves environment and policy documents.
// This allows the storage layer (filesystem, memory) to be decoupled from parsing.
type SourceLoader interface {
	// Read returns the full raw content of the named document.
	Read(name string) ([]byte, error)

	// List returns the names of all documents the loader can read.
	List() ([]string, error)
}
