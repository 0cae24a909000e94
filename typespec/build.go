package typespec

import "github.com/dhamidi/tsp/peg"

// buildDocument converts a successful Document match into the typed tree,
// walking declarations in document order. Semantic checks happen here:
// reserved words as names, duplicate fields, duplicate declarations.
func buildDocument(match peg.Result) (*Document, error) {
	doc := &Document{}
	seen := make(map[string]bool)
	for _, item := range match.Child(0).Children {
		var decl Decl
		var err error
		switch item.Rule {
		case "ModelDecl":
			decl, err = buildModel(item)
		case "EnumDecl":
			decl, err = buildEnum(item)
		}
		if err != nil {
			return nil, err
		}
		if seen[decl.DeclName()] {
			return nil, duplicateDecl(decl.DeclName())
		}
		seen[decl.DeclName()] = true
		doc.Decls = append(doc.Decls, decl)
	}
	return doc, nil
}

// ModelDecl := "model" Identifier "{" PropertyList "}"
func buildModel(match peg.Result) (*Model, error) {
	name := match.Child(1).Text
	if reservedWords[name] {
		return nil, reservedWord(name, "model name")
	}
	model := &Model{Name: name}
	seen := make(map[string]bool)
	for _, entry := range match.Child(3).Children {
		property := entry.Child(0)
		field, err := buildField(model.Name, property)
		if err != nil {
			return nil, err
		}
		if seen[field.Name] {
			return nil, duplicateField(model.Name, field.Name)
		}
		seen[field.Name] = true
		model.Fields = append(model.Fields, field)
	}
	return model, nil
}

// Property := Identifier ":" TypeExpr
func buildField(model string, match peg.Result) (Field, error) {
	name := match.Child(0).Text
	if reservedWords[name] {
		return Field{}, reservedWord(name, "field name")
	}
	return Field{Name: name, Type: buildType(match.Child(2))}, nil
}

// TypeExpr := Identifier ArrayMarker? OptionalMarker?
//
// The wrapping order mirrors the grammar: the base type first, then Array if
// the array marker matched, then Optional if the optional marker matched.
func buildType(match peg.Result) Type {
	name := match.Child(0).Text
	var t Type
	if IsPrimitive(name) {
		t = Primitive{Name: name}
	} else {
		t = Reference{Name: name}
	}
	if len(match.Child(1).Children) > 0 {
		t = Array{Elem: t}
	}
	if len(match.Child(2).Children) > 0 {
		t = Optional{Elem: t}
	}
	return t
}

// EnumDecl := "enum" Identifier "{" EnumValueList "}"
func buildEnum(match peg.Result) (*Enum, error) {
	name := match.Child(1).Text
	if reservedWords[name] {
		return nil, reservedWord(name, "enum name")
	}
	enum := &Enum{Name: name}
	for _, entry := range match.Child(3).Children {
		value := entry.Child(0).Text
		if len(value) >= 2 && value[0] == '"' {
			// Quoted values carry their literal text without the quotes.
			value = value[1 : len(value)-1]
		} else if reservedWords[value] {
			return nil, reservedWord(value, "enum value")
		}
		enum.Values = append(enum.Values, value)
	}
	return enum, nil
}
