package entity

// DirectoryAgent is a read-only record from the static agent directory.
// These are sourced from an external file and never mutated here.
type DirectoryAgent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
	Description  string   `json:"description,omitempty"`
}

// ExternalFeedItem is a decorative item from the static external feed.
type ExternalFeedItem struct {
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}
