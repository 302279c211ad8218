//go:build ignore
// +build ignore

// gen_packet_registry scans a packet package for types marked @gen:reg,
// extracts the discriminant from their ID() methods, and emits the
// DefaultRegistry dispatch table. Keeping the table generated means a
// new packet type cannot be forgotten in the registry or registered
// under the wrong discriminant.
package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type registryEntry struct {
	TypeName string
	PacketID int
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_registry.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1]
	fset := token.NewFileSet()
	var entries []registryEntry
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		// Pre-scan for ID() methods to map TypeName -> discriminant.
		typeIDs := make(map[string]int)
		for _, decl := range node.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "ID" || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			var recvName string
			switch recvType := fn.Recv.List[0].Type.(type) {
			case *ast.StarExpr:
				if ident, ok := recvType.X.(*ast.Ident); ok {
					recvName = ident.Name
				}
			case *ast.Ident:
				recvName = recvType.Name
			}
			if recvName == "" || fn.Body == nil {
				continue
			}

			for _, stmt := range fn.Body.List {
				ret, ok := stmt.(*ast.ReturnStmt)
				if !ok || len(ret.Results) == 0 {
					continue
				}
				if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
					id, err := strconv.Atoi(lit.Value)
					if err != nil {
						panic(fmt.Sprintf("%s.ID() does not return an integer literal", recvName))
					}
					typeIDs[recvName] = id
				}
			}
		}

		// Collect types whose doc comment carries the @gen:reg marker.
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			marked := false
			for _, comment := range gen.Doc.List {
				if strings.Contains(comment.Text, "@gen:reg") {
					marked = true
					break
				}
			}
			if !marked {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				id, ok := typeIDs[tspec.Name.Name]
				if !ok {
					panic(fmt.Sprintf("type %s is marked @gen:reg but has no ID() method", tspec.Name.Name))
				}
				entries = append(entries, registryEntry{TypeName: tspec.Name.Name, PacketID: id})
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].PacketID < entries[j].PacketID })
	for i := 1; i < len(entries); i++ {
		if entries[i].PacketID == entries[i-1].PacketID {
			panic(fmt.Sprintf("discriminant %d is claimed by both %s and %s",
				entries[i].PacketID, entries[i-1].TypeName, entries[i].TypeName))
		}
	}

	outFile := filepath.Join(targetDir, "zz_generated_registry.go")
	out, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer out.Close()

	const tmpl = `// Code generated by gen_packet_registry.go; DO NOT EDIT.
package {{.PkgName}}

// DefaultRegistry maps every discriminant in this package to its packet
// constructor.
var DefaultRegistry = Registry{
{{- range .Entries}}
	{{.PacketID}}: func() Packet { return &{{.TypeName}}{} },
{{- end}}
}
`

	t := template.Must(template.New("registry").Parse(tmpl))
	data := struct {
		PkgName string
		Entries []registryEntry
	}{
		PkgName: pkgName,
		Entries: entries,
	}

	if err := t.Execute(out, data); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s with %d packets\n", outFile, len(entries))
}
