package gentsdecl

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"
	pbdescriptor "github.com/golang/protobuf/protoc-gen-go/descriptor"
	plugin "github.com/golang/protobuf/protoc-gen-go/plugin"
	"github.com/pkg/errors"
)

// Parameters controls a generation run.
type Parameters struct {
	// OutputNamePattern is a text/template for record names; see OutputName.
	OutputNamePattern string
	// OriginalNames keys fields by their proto name instead of their JSON name.
	OriginalNames bool
	// OnlyTargets limits generation to the request's FileToGenerate list.
	OnlyTargets bool
	// DumpRequestDescriptor writes the request to the generator's dump writer.
	DumpRequestDescriptor bool
}

// Generator turns a CodeGeneratorRequest into TypeScript declaration files,
// one per top-level message.
type Generator struct {
	Request  *plugin.CodeGeneratorRequest
	Response *plugin.CodeGeneratorResponse

	// Dump receives the request dump; defaults to stderr.
	Dump io.Writer
}

// New returns a Generator with an empty request and response.
func New() *Generator {
	return &Generator{
		Request:  new(plugin.CodeGeneratorRequest),
		Response: new(plugin.CodeGeneratorResponse),
		Dump:     os.Stderr,
	}
}

func (g *Generator) targets(onlyTargets bool) []*pbdescriptor.FileDescriptorProto {
	if !onlyTargets {
		return g.Request.GetProtoFile()
	}
	wanted := make(map[string]bool, len(g.Request.GetFileToGenerate()))
	for _, name := range g.Request.GetFileToGenerate() {
		wanted[name] = true
	}
	var files []*pbdescriptor.FileDescriptorProto
	for _, f := range g.Request.GetProtoFile() {
		if wanted[f.GetName()] {
			files = append(files, f)
		}
	}
	return files
}

// GenerateAllFiles fills g.Response with one file per message, in request
// order. On error the response files are left untouched.
func (g *Generator) GenerateAllFiles(params *Parameters) error {
	if params == nil {
		params = &Parameters{}
	}
	if params.DumpRequestDescriptor {
		spew.Fdump(g.Dump, g.Request)
	}
	namer, err := newOutputNamer(params.OutputNamePattern)
	if err != nil {
		return err
	}

	var files []*plugin.CodeGeneratorResponse_File
	for _, file := range g.targets(params.OnlyTargets) {
		glog.V(1).Infof("Processing %s", file.GetName())
		for _, message := range file.GetMessageType() {
			f, err := g.generateMessage(file, message, namer, params)
			if err != nil {
				return errors.Wrap(err, file.GetName())
			}
			files = append(files, f)
			glog.V(1).Infof("Will emit %s", f.GetName())
		}
	}

	g.Response.File = files
	g.Response.SupportedFeatures = proto.Uint64(uint64(plugin.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL))
	return nil
}

func (g *Generator) generateMessage(
	file *pbdescriptor.FileDescriptorProto,
	message *pbdescriptor.DescriptorProto,
	namer *outputNamer,
	params *Parameters,
) (*plugin.CodeGeneratorResponse_File, error) {
	spec, err := NewMessageSpec(message, params.OriginalNames)
	if err != nil {
		return nil, err
	}
	plain, groups := Classify(spec)
	for i, group := range groups {
		if len(group) == 0 {
			glog.Warningf("%s: oneof %s has no fields; its union has no members",
				message.GetName(), message.GetOneofDecl()[i].GetName())
		}
	}
	name, err := namer.name(newOutputName(file, message))
	if err != nil {
		return nil, err
	}
	return &plugin.CodeGeneratorResponse_File{
		Name:    proto.String(name),
		Content: proto.String(Render(spec.Name, plain, groups)),
	}, nil
}
