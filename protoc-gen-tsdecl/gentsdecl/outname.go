package gentsdecl

import (
	"bytes"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	pbdescriptor "github.com/golang/protobuf/protoc-gen-go/descriptor"
	"github.com/pkg/errors"
)

// DefaultOutputNamePattern names each record after its message.
const DefaultOutputNamePattern = "{{.Name}}.d.ts"

// OutputName is the data an output name pattern is executed against.
type OutputName struct {
	Name     string // message name
	File     string // proto file path, e.g. "shapes/v1/shape.proto"
	Dir      string // "shapes/v1"
	BaseName string // "shape"
	Package  string // "shapes.v1"
	Module   string // "shapes_v1"
}

func newOutputName(f *pbdescriptor.FileDescriptorProto, m *pbdescriptor.DescriptorProto) OutputName {
	name := f.GetName()
	return OutputName{
		Name:     m.GetName(),
		File:     name,
		Dir:      path.Dir(name),
		BaseName: strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Package:  f.GetPackage(),
		Module:   moduleName(f.GetPackage()),
	}
}

/*
turns a proto package into something usable as a single path segment or identifier

	google.api -> google_api
*/
func moduleName(pkg string) string {
	pkg = strings.ReplaceAll(pkg, "/", "_")
	pkg = strings.ReplaceAll(pkg, ".", "_")
	return pkg
}

type outputNamer struct {
	tmpl *template.Template
}

func newOutputNamer(pattern string) (*outputNamer, error) {
	if pattern == "" {
		pattern = DefaultOutputNamePattern
	}
	tmpl, err := template.New("outpattern").Funcs(sprig.TxtFuncMap()).Parse(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "parsing output name pattern")
	}
	return &outputNamer{tmpl: tmpl}, nil
}

func (n *outputNamer) name(data OutputName) (string, error) {
	buf := new(bytes.Buffer)
	if err := n.tmpl.Execute(buf, data); err != nil {
		return "", errors.Wrapf(err, "executing output name pattern for %s", data.Name)
	}
	out := buf.String()
	if out == "" {
		return "", errors.Errorf("output name pattern produced an empty name for %s", data.Name)
	}
	return out, nil
}
