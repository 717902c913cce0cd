// protoc-gen-tsdecl generates TypeScript type declaration files from Protocol Buffer files. Every top-level message becomes a read-only type alias in its own .d.ts file, keyed by the JSON names of its fields.
//
// Fields inside a oneof are rendered as a union of object shapes. Each shape has one member set to its real type and the other members typed never, so at most one member of a oneof can be populated:
//
//  type Shape = Readonly<{
//    id: number;
//  }> & Readonly<
//      {
//        circle?: Circle;
//        square?: never;
//      } |
//      {
//        circle?: never;
//        square?: Square;
//      }
//    >;
//
// Message and enum references keep the fully qualified proto name given by protoc (for example ".shapes.Circle").
//
// Usage
//
// Typical use will be via a protoc execution, a very simple example is:
//  protoc -I. --tsdecl_out=. shapes.proto
//
// Options
//
// The following options are available:
//  outpattern: control the output file paths, a text/template with sprig functions (default "{{.Name}}.d.ts")
//  original_names: use original field names instead of JSON names (default false)
//  only_targets: only generate files listed in file_to_generate, not their imports (default false)
//  dump_request_descriptor: dump the decoded request to stderr (default false)
//  v: glog verbosity level
// An example of running with a custom option set:
//  protoc -I. --tsdecl_out=original_names,outpattern={{.Module}}/{{.Name}}.d.ts:. shapes.proto
//
package main
