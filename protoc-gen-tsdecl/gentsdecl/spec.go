package gentsdecl

import (
	pbdescriptor "github.com/golang/protobuf/protoc-gen-go/descriptor"
	"github.com/pkg/errors"
	strcase "github.com/stoewer/go-strcase"
)

var (
	// ErrUnmappedKind is returned for a field whose proto type has no TypeScript mapping.
	ErrUnmappedKind = errors.New("unmapped field type")
	// ErrGroupIndex is returned for a field whose oneof index is out of range.
	ErrGroupIndex = errors.New("oneof index out of range")
)

// ScalarKind is the coarse category a proto field type maps onto.
type ScalarKind int

const (
	Numeric ScalarKind = iota
	Textual
	Boolean
	Reference
)

func (k ScalarKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Textual:
		return "textual"
	case Boolean:
		return "boolean"
	case Reference:
		return "reference"
	}
	return "unknown"
}

// Multiplicity tells whether a field holds one value or a sequence.
type Multiplicity int

const (
	Single Multiplicity = iota
	Repeated
)

// FieldSpec is the part of a field descriptor the generator cares about.
type FieldSpec struct {
	Key          string
	Kind         ScalarKind
	TypeName     string // only for Reference
	Multiplicity Multiplicity
	GroupIndex   *int32 // nil for plain fields
}

// MessageSpec is a message reduced to its name, fields and oneof count.
type MessageSpec struct {
	Name       string
	Fields     []FieldSpec
	GroupCount int
}

func scalarKind(t pbdescriptor.FieldDescriptorProto_Type) (ScalarKind, error) {
	switch t {
	case pbdescriptor.FieldDescriptorProto_TYPE_DOUBLE,
		pbdescriptor.FieldDescriptorProto_TYPE_FLOAT,
		pbdescriptor.FieldDescriptorProto_TYPE_INT64,
		pbdescriptor.FieldDescriptorProto_TYPE_UINT64,
		pbdescriptor.FieldDescriptorProto_TYPE_INT32,
		pbdescriptor.FieldDescriptorProto_TYPE_FIXED64,
		pbdescriptor.FieldDescriptorProto_TYPE_FIXED32,
		pbdescriptor.FieldDescriptorProto_TYPE_UINT32,
		pbdescriptor.FieldDescriptorProto_TYPE_SFIXED32,
		pbdescriptor.FieldDescriptorProto_TYPE_SFIXED64,
		pbdescriptor.FieldDescriptorProto_TYPE_SINT32,
		pbdescriptor.FieldDescriptorProto_TYPE_SINT64:
		return Numeric, nil
	case pbdescriptor.FieldDescriptorProto_TYPE_STRING,
		pbdescriptor.FieldDescriptorProto_TYPE_BYTES:
		return Textual, nil
	case pbdescriptor.FieldDescriptorProto_TYPE_BOOL:
		return Boolean, nil
	case pbdescriptor.FieldDescriptorProto_TYPE_ENUM,
		pbdescriptor.FieldDescriptorProto_TYPE_MESSAGE,
		pbdescriptor.FieldDescriptorProto_TYPE_GROUP:
		return Reference, nil
	}
	return 0, errors.Wrapf(ErrUnmappedKind, "type %d", int32(t))
}

func fieldKey(f *pbdescriptor.FieldDescriptorProto, originalNames bool) string {
	if originalNames {
		return f.GetName()
	}
	if f.GetJsonName() != "" {
		return f.GetJsonName()
	}
	// hand-built descriptors may lack json_name; protoc always sets it
	return strcase.LowerCamelCase(f.GetName())
}

// NewMessageSpec reduces a message descriptor to a MessageSpec. It fails if a
// field type is unmapped or a oneof index falls outside the declared oneofs.
func NewMessageSpec(m *pbdescriptor.DescriptorProto, originalNames bool) (*MessageSpec, error) {
	spec := &MessageSpec{
		Name:       m.GetName(),
		Fields:     make([]FieldSpec, 0, len(m.GetField())),
		GroupCount: len(m.GetOneofDecl()),
	}
	for _, f := range m.GetField() {
		kind, err := scalarKind(f.GetType())
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", m.GetName(), f.GetName())
		}
		fs := FieldSpec{
			Key:  fieldKey(f, originalNames),
			Kind: kind,
		}
		if kind == Reference {
			fs.TypeName = f.GetTypeName()
		}
		if f.GetLabel() == pbdescriptor.FieldDescriptorProto_LABEL_REPEATED {
			fs.Multiplicity = Repeated
		}
		if f.OneofIndex != nil {
			idx := f.GetOneofIndex()
			if idx < 0 || int(idx) >= spec.GroupCount {
				return nil, errors.Wrapf(ErrGroupIndex, "%s.%s: index %d, %d oneofs declared",
					m.GetName(), f.GetName(), idx, spec.GroupCount)
			}
			fs.GroupIndex = &idx
		}
		spec.Fields = append(spec.Fields, fs)
	}
	return spec, nil
}
