package gentsdecl

import (
	"bytes"
	"fmt"
)

type tsField struct {
	key      string
	typ      TSType
	optional bool
}

func (f tsField) String() string {
	if f.optional {
		return fmt.Sprintf("%s?: %s;", f.key, f.typ.TSType())
	}
	return fmt.Sprintf("%s: %s;", f.key, f.typ.TSType())
}

// variant is one object shape of a oneof union.
type variant []tsField

// generatedType is the structural form of a message before it is printed.
type generatedType struct {
	name   string
	plain  []tsField
	unions [][]variant
}

// exclusiveVariants builds the union for one oneof group: one variant per
// member, in which that member is live and every other member is typed never.
// The live member is optional too, so a value may leave the whole group unset.
func exclusiveVariants(group []FieldSpec) []variant {
	variants := make([]variant, 0, len(group))
	for i := range group {
		v := make(variant, 0, len(group))
		for j, member := range group {
			f := tsField{key: member.Key, typ: neverType, optional: true}
			if i == j {
				f.typ = FieldType(member)
			}
			v = append(v, f)
		}
		variants = append(variants, v)
	}
	return variants
}

func newGeneratedType(name string, plain []FieldSpec, groups [][]FieldSpec) *generatedType {
	t := &generatedType{name: name}
	for _, f := range plain {
		t.plain = append(t.plain, tsField{key: f.Key, typ: FieldType(f)})
	}
	for _, g := range groups {
		t.unions = append(t.unions, exclusiveVariants(g))
	}
	return t
}

func (t *generatedType) write(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "type %s = ", t.name)
	if len(t.plain) == 0 && len(t.unions) == 0 {
		buf.WriteString("Readonly<{}>;\n")
		return
	}
	if len(t.plain) > 0 {
		buf.WriteString("Readonly<{\n")
		for _, f := range t.plain {
			fmt.Fprintf(buf, "  %s\n", f)
		}
		buf.WriteString("}>")
		if len(t.unions) > 0 {
			buf.WriteString(" & ")
		}
	}
	for i, union := range t.unions {
		buf.WriteString("Readonly<\n")
		for j, v := range union {
			buf.WriteString("    {\n")
			for _, f := range v {
				fmt.Fprintf(buf, "      %s\n", f)
			}
			buf.WriteString("    }")
			if j < len(union)-1 {
				buf.WriteString(" |")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("  >")
		if i < len(t.unions)-1 {
			buf.WriteString(" & ")
		}
	}
	buf.WriteString(";\n")
}

// Render prints the declaration of a classified message as a type alias: the
// plain fields as one read-only object, intersected with one union per group.
func Render(name string, plain []FieldSpec, groups [][]FieldSpec) string {
	buf := new(bytes.Buffer)
	newGeneratedType(name, plain, groups).write(buf)
	return buf.String()
}
