package confluence

import "github.com/grandcamel/confluence-assistant-skills/pkg/client"

// Space is the narrowed view of a Confluence space used for display.
type Space struct {
	ID     string
	Key    string
	Name   string
	Type   string
	Status string
}

// Page is the narrowed view of a Confluence page.
type Page struct {
	ID       string
	Title    string
	SpaceID  string
	ParentID string
	Status   string
	Version  int
	Body     string
	WebUI    string
}

// PageNode is one node of a page tree, built by PageTree.
type PageNode struct {
	Page     Page
	Children []*PageNode
}

// SearchResult is one row of a CQL search response.
type SearchResult struct {
	ID      string
	Type    string
	Title   string
	Excerpt string
}

// Comment is a footer comment on a page.
type Comment struct {
	ID        string
	Body      string
	CreatedAt string
}

// Label is a content label.
type Label struct {
	ID     string
	Name   string
	Prefix string
}

// Attachment is a file attached to a page.
type Attachment struct {
	ID           string
	Title        string
	MediaType    string
	FileSize     int
	DownloadLink string
}

// Restriction describes which users and groups hold an operation on a page.
type Restriction struct {
	Operation string
	Users     []string
	Groups    []string
}

func spaceFromDoc(doc client.Document) Space {
	return Space{
		ID:     str(doc, "id"),
		Key:    str(doc, "key"),
		Name:   str(doc, "name"),
		Type:   str(doc, "type"),
		Status: str(doc, "status"),
	}
}

func pageFromDoc(doc client.Document) Page {
	p := Page{
		ID:       str(doc, "id"),
		Title:    str(doc, "title"),
		SpaceID:  str(doc, "spaceId"),
		ParentID: str(doc, "parentId"),
		Status:   str(doc, "status"),
	}

	if version, ok := doc["version"].(map[string]any); ok {
		p.Version = integer(version, "number")
	}
	if body, ok := doc["body"].(map[string]any); ok {
		if storage, ok := body["storage"].(map[string]any); ok {
			p.Body = str(storage, "value")
		}
	}
	if links, ok := doc["_links"].(map[string]any); ok {
		p.WebUI = str(links, "webui")
	}

	return p
}

func commentFromDoc(doc client.Document) Comment {
	c := Comment{
		ID:        str(doc, "id"),
		CreatedAt: str(doc, "createdAt"),
	}
	if body, ok := doc["body"].(map[string]any); ok {
		if storage, ok := body["storage"].(map[string]any); ok {
			c.Body = str(storage, "value")
		}
	}
	return c
}

func labelFromDoc(doc client.Document) Label {
	return Label{
		ID:     str(doc, "id"),
		Name:   str(doc, "name"),
		Prefix: str(doc, "prefix"),
	}
}

func attachmentFromDoc(doc client.Document) Attachment {
	a := Attachment{
		ID:        str(doc, "id"),
		Title:     str(doc, "title"),
		MediaType: str(doc, "mediaType"),
		FileSize:  integer(doc, "fileSize"),
	}

	// v1 nests media metadata under extensions; v2 flattens it.
	if ext, ok := doc["extensions"].(map[string]any); ok {
		if a.MediaType == "" {
			a.MediaType = str(ext, "mediaType")
		}
		if a.FileSize == 0 {
			a.FileSize = integer(ext, "fileSize")
		}
	}
	if links, ok := doc["_links"].(map[string]any); ok {
		a.DownloadLink = str(links, "download")
	}
	if a.DownloadLink == "" {
		a.DownloadLink = str(doc, "downloadLink")
	}

	return a
}

func str(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func integer(doc map[string]any, key string) int {
	switch v := doc[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
