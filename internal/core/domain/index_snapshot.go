package domain

// IndexEntry is one artifact key of an export index with its ordered exporting entries.
type IndexEntry struct {
	Key     ArtifactKey
	Entries []ExportingEntry
}

// IndexSnapshot is a read-only listing of an export index, sorted by key.
type IndexSnapshot struct {
	Fingerprint string
	Entries     []IndexEntry
}
