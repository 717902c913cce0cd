package main

import (
	"flag"
	"io/ioutil"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/tmc/tsdecl/protoc-gen-tsdecl/gentsdecl"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	flagOutputFilenamePattern = flag.String("outpattern", gentsdecl.DefaultOutputNamePattern, "output filename pattern")
	flagOriginalNames         = flag.Bool("original_names", false, "if true, use original proto field names, otherwise use the JSON name")
	flagOnlyTargets           = flag.Bool("only_targets", false, "if true, only generate for files listed in file_to_generate")
	flagDumpDescriptor        = flag.Bool("dump_request_descriptor", false, "if true, dump request descriptor")
)

func main() {
	flag.Parse()
	// glog's flags (v, vmodule, ...) share flag.CommandLine with ours
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Exitln(err)
	}
	defer glog.Flush()

	g := gentsdecl.New()
	if terminal.IsTerminal(0) {
		flag.Usage()
		glog.Exitln("stdin appears to be a tty device. This tool is meant to be invoked via the protoc command via a --tsdecl_out directive.")
	}
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		glog.Exitln(errors.Wrap(err, "reading input"))
	}
	if err := proto.Unmarshal(data, g.Request); err != nil {
		glog.Exitln(errors.Wrap(err, "parsing input"))
	}
	if err := parseFlags(g.Request.GetParameter()); err != nil {
		glog.Exitln(err)
	}
	err = g.GenerateAllFiles(&gentsdecl.Parameters{
		OutputNamePattern:     *flagOutputFilenamePattern,
		OriginalNames:         *flagOriginalNames,
		OnlyTargets:           *flagOnlyTargets,
		DumpRequestDescriptor: *flagDumpDescriptor,
	})
	if err != nil {
		glog.Exitln(errors.Wrap(err, "generating declarations"))
	}
	data, err = proto.Marshal(g.Response)
	if err != nil {
		glog.Exitln(errors.Wrap(err, "failed to marshal output proto"))
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		glog.Exitln(errors.Wrap(err, "failed to write output proto"))
	}
}

// parseFlags applies a protoc parameter string ("a=1,b") to flag.CommandLine.
func parseFlags(s string) error {
	if s == "" {
		return nil
	}
	for _, p := range strings.Split(s, ",") {
		spec := strings.SplitN(p, "=", 2)
		if len(spec) == 1 {
			// a bare name switches a boolean flag on
			if err := flag.CommandLine.Set(spec[0], "true"); err != nil {
				return errors.Wrapf(err, "cannot set flag %s", p)
			}
			continue
		}
		name, value := spec[0], spec[1]
		if err := flag.CommandLine.Set(name, value); err != nil {
			return errors.Wrapf(err, "cannot set flag %s", p)
		}
	}
	return nil
}
