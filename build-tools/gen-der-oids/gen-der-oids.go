// SPDX-License-Identifier: Apache-2.0

// gen-der-oids generates a Go table of DER encoded OIDs from OID definition files.  Only
// leaves are emitted: names that are never used as the prefix of another definition.
//
//	go run ./build-tools/gen-der-oids -o der_oids_gen.go -pkg wellknown pkcs1.asn1 x962.asn1
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/golang-auth/go-oid"
	"github.com/golang-auth/go-oid/defs"
)

var codeTemplate = `// SPDX-License-Identifier: Apache-2.0

// Code generated by gen-der-oids. DO NOT EDIT.

package {{.Package}}

import "github.com/golang-auth/go-oid"

var derOids = []struct {
	name      string
	oidString string
	der       oid.Oid
}{
{{- range .Leaves}}
	// {{.Oid.S}}
	{"{{.Name}}", "{{.Oid.S}}", oid.Oid{ {{- bytesFormat .Oid.B -}} }},
{{- end}}
}
`

type derOid struct {
	S string
	B []byte
}

type tmplParam struct {
	Name string
	Oid  derOid
}

type tmplData struct {
	Package string
	Leaves  []tmplParam
}

func main() {
	output := flag.String("o", "", "output file name")
	pkg := flag.String("pkg", "main", "package name of the generated file")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no definition files given")
	}

	var buf bytes.Buffer
	if err := generate(&buf, *pkg, flag.Args()...); err != nil {
		log.Fatal(err)
	}

	fh := os.Stdout
	var err error
	if *output != "" {
		fh, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
	}

	if _, err := fh.Write(buf.Bytes()); err != nil {
		log.Fatal(err)
	}

	if *output != "" {
		if err := fh.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// generate loads the definition files and writes the formatted Go source for their
// leaves to w.
func generate(w io.Writer, pkg string, files ...string) error {
	reg := oid.NewRegistry()
	if _, err := defs.LoadFiles(reg, files...); err != nil {
		return err
	}

	data, err := makeParams(reg)
	if err != nil {
		return err
	}
	data.Package = pkg

	funcs := template.FuncMap{
		"bytesFormat": bytesFormat,
	}
	t := template.Must(template.New("code").Funcs(funcs).Parse(codeTemplate))

	var src bytes.Buffer
	if err := t.Execute(&src, data); err != nil {
		return err
	}

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	_, err = w.Write(formatted)

	return err
}

func makeParams(reg *oid.Registry) (tmplData, error) {
	var data tmplData

	// leaves come back sorted by name
	for _, name := range reg.RegisteredOidLeaves() {
		arcs, _, _ := reg.Lookup(name)

		enc, err := oid.EncodeArcs(arcs)
		if err != nil {
			return data, fmt.Errorf("encoding %s: %w", name, err)
		}

		data.Leaves = append(data.Leaves, tmplParam{
			Name: name,
			Oid:  derOid{S: arcs.String(), B: enc},
		})
	}

	return data, nil
}

func bytesFormat(b []byte) string {
	strs := make([]string, len(b))
	for i, s := range b {
		strs[i] = fmt.Sprintf("0x%02x", s)
	}
	return strings.Join(strs, ", ")
}
