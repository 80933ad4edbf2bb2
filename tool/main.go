// Command adtgen reads sum type declarations and writes the unexported marker
// methods that close a Go interface over its listed variants.
//
//	sum Statement = | LetStatement | ReturnStatement ;
//
// produces
//
//	func (*LetStatement) statementNode() {}
//	func (*ReturnStatement) statementNode() {}
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type SumDecls struct {
	Sums []*Sum `@@*`
}

type Sum struct {
	Name     string   `"sum" @Ident "="`
	Variants []string `"|"? @Ident ("|" @Ident)* ";"`
}

// Marker is the name of the method that tags a variant of s.
func (s *Sum) Marker() string {
	return strings.ToLower(s.Name[:1]) + s.Name[1:] + "Node"
}

// Check reports a variant listed twice, within one sum or across sums.
func (t *SumDecls) Check() error {
	seen := map[string]string{}
	for _, sum := range t.Sums {
		for _, v := range sum.Variants {
			if prev, ok := seen[v]; ok {
				return fmt.Errorf("variant %s listed in %s and %s", v, prev, sum.Name)
			}
			seen[v] = sum.Name
		}
	}
	return nil
}

func GenerateMarkers(pkgname, source string, t *SumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, sum := range t.Sums {
		for _, variant := range sum.Variants {
			f.Func().Params(Op("*").Id(variant)).Id(sum.Marker()).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func Parse(data []byte) (*SumDecls, error) {
	parser := participle.MustBuild(&SumDecls{})

	decls := &SumDecls{}
	if err := parser.ParseBytes(data, decls); err != nil {
		return nil, err
	}
	if err := decls.Check(); err != nil {
		return nil, err
	}
	return decls, nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtgen <input.adt> <output.go> <package>")
		os.Exit(2)
	}

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls, err := Parse(inData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", in, err)
		os.Exit(1)
	}

	err = ioutil.WriteFile(out, []byte(GenerateMarkers(pkgname, filepath.Base(in), decls)), 0644)
	if err != nil {
		panic(err)
	}
}
