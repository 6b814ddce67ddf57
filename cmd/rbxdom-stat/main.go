// The rbxdom-stat command displays stats for a roblox place or model file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/robloxapi/rbxdom"
	"github.com/robloxapi/rbxdom/binary"
	"github.com/robloxapi/rbxdom/xml"
)

const usage = `usage: rbxdom-stat [INPUT] [OUTPUT]

Reads a RBXL, RBXM, RBXLX, or RBXMX file from INPUT, and writes to OUTPUT
statistics for the file.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then
stdin is used. If OUTPUT is "-" or unspecified, then stdout is used.
Format is guessed from INPUT's extension (rbxl/rbxm -> binary, rbxlx/rbxmx
-> xml); with stdin, binary is tried first and xml on failure. Errors are
written to stderr; decoder warnings are not reported.
`

// PropLen identifies one (class, property, type) triple among the string-
// or array-valued properties seen, for reporting the largest few.
type PropLen struct {
	Class    string
	Property string
	Type     string
	Length   int
}

func (p PropLen) String() string {
	return fmt.Sprintf("%s.%s:%s(%d)", p.Class, p.Property, p.Type, p.Length)
}

type PropLenCount map[PropLen]int

func (p PropLenCount) MarshalJSON() ([]byte, error) {
	list := make([]PropLen, 0, len(p))
	for k := range p {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Length > list[j].Length
	})
	if len(list) > 20 {
		list = list[:20]
	}
	return json.Marshal(list)
}

type Stats struct {
	// Number of instances overall.
	InstanceCount int
	// Number of properties overall.
	PropertyCount int
	// Number of instances per class.
	ClassCount map[string]int
	// Number of properties per type.
	TypeCount map[string]int
	// The largest string/array-shaped property values seen.
	LargestProperties PropLenCount `json:",omitempty"`
}

func fill(dom *rbxdom.WeakDom) Stats {
	s := Stats{
		ClassCount:        map[string]int{},
		TypeCount:         map[string]int{},
		LargestProperties: PropLenCount{},
	}
	for _, inst := range dom.Descendants() {
		s.InstanceCount++
		s.ClassCount[inst.ClassName]++
		for name, v := range inst.Properties {
			s.PropertyCount++
			s.TypeCount[v.Type().String()]++

			var n int
			switch v := v.(type) {
			case rbxdom.String:
				n = len(v)
			case rbxdom.BinaryString:
				n = len(v)
			case rbxdom.Content:
				n = len(v.URI)
			case rbxdom.NumberSequence:
				n = len(v)
			case rbxdom.ColorSequence:
				n = len(v)
			default:
				continue
			}
			s.LargestProperties[PropLen{
				Class:    inst.ClassName,
				Property: name,
				Type:     v.Type().String(),
				Length:   n,
			}]++
		}
	}
	return s
}

func decode(name string, r io.Reader) (*rbxdom.WeakDom, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".rbxlx", ".rbxmx":
		return (&xml.Decoder{}).Decode(r)
	case ".rbxl", ".rbxm":
		return (&binary.Decoder{}).Decode(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dom, binErr := (&binary.Decoder{}).Decode(strings.NewReader(string(data)))
	if binErr == nil {
		return dom, nil
	}
	dom, xmlErr := (&xml.Decoder{}).Decode(strings.NewReader(string(data)))
	if xmlErr == nil {
		return dom, nil
	}
	return nil, fmt.Errorf("not a recognized file (binary: %v; xml: %v)", binErr, xmlErr)
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout
	inputName := "-"

	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		inputName = args[0]
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		output = out
	}

	dom, err := decode(inputName, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
		return
	}

	stats := fill(dom)

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
