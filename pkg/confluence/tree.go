package confluence

import (
	"context"
)

// DefaultMaxDepth bounds tree traversal when the caller does not set one.
const DefaultMaxDepth = 10

// PageTree loads the page with the given ID and recursively attaches its
// descendants, depth-first, children in server order. maxDepth counts edges
// below the root; zero means DefaultMaxDepth.
func (s *Service) PageTree(ctx context.Context, id string, maxDepth int) (*PageNode, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	root, err := s.GetPage(ctx, id)
	if err != nil {
		return nil, err
	}

	node := &PageNode{Page: root}
	if err := s.attachChildren(ctx, node, maxDepth); err != nil {
		return nil, err
	}

	return node, nil
}

// Descendants returns every page below the given ID in depth-first order,
// excluding the root itself.
func (s *Service) Descendants(ctx context.Context, id string, maxDepth int) ([]Page, error) {
	tree, err := s.PageTree(ctx, id, maxDepth)
	if err != nil {
		return nil, err
	}

	var pages []Page
	var walk func(*PageNode)
	walk = func(n *PageNode) {
		for _, child := range n.Children {
			pages = append(pages, child.Page)
			walk(child)
		}
	}
	walk(tree)

	return pages, nil
}

func (s *Service) attachChildren(ctx context.Context, node *PageNode, depth int) error {
	if depth == 0 {
		return nil
	}

	children, err := s.ChildPages(ctx, node.Page.ID)
	if err != nil {
		return err
	}

	for _, child := range children {
		childNode := &PageNode{Page: child}
		node.Children = append(node.Children, childNode)
		if err := s.attachChildren(ctx, childNode, depth-1); err != nil {
			return err
		}
	}

	return nil
}
