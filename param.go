package bigo

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// sizeParam names the function parameter treated as the input size, plus its
// position in the parameter list.
type sizeParam struct {
	name  string
	index int
}

// selectSizeParam chooses the size parameter for a function definition:
//
//  1. a parameter literally named "n", if present;
//  2. otherwise the rightmost parameter whose declarator carries no pointer;
//  3. otherwise none — recurrence inference then cannot attribute b or c.
func selectSizeParam(fnDef *sitter.Node, src []byte) (sizeParam, bool) {
	decl := fnDef.ChildByFieldName("declarator")
	if decl == nil {
		return sizeParam{}, false
	}
	plist := firstDescendant(decl, "parameter_list")
	if plist == nil {
		return sizeParam{}, false
	}

	var (
		chosen sizeParam
		found  bool
		index  int
	)
	for i := 0; i < int(plist.ChildCount()); i++ {
		child := plist.Child(i)
		if child == nil || child.Type() != "parameter_declaration" {
			continue
		}
		name := firstIdentifier(child, src)
		if name == "n" {
			return sizeParam{name: name, index: index}, true
		}
		if name != "" && !isPointerParam(child, src) {
			chosen = sizeParam{name: name, index: index}
			found = true
		}
		index++
	}
	return chosen, found
}

// isPointerParam reports whether a parameter_declaration declares a pointer.
func isPointerParam(param *sitter.Node, src []byte) bool {
	if firstDescendant(param, "pointer_declarator") != nil {
		return true
	}
	return strings.Contains(nodeText(param, src), "*")
}
