package pnglist

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/itchyny/gojq"
)

// EachLine calls process for each line of input, passing it the line as a
// string, and a *strings.Builder to write its output to. The return value
// from EachLine is a pipe containing the contents of the strings.Builder.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := bufio.NewScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return p
	}
	return Echo(output.String())
}

// MatchSuffix returns a pipe containing only the input lines which end with
// suffix, ignoring case.
func (p *Pipe) MatchSuffix(suffix string) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if hasSuffixFold(line, suffix) {
			out.WriteString(line)
			out.WriteRune('\n')
		}
	})
}

// JQ reads the input as a sequence of JSON values and runs the jq query on
// each one. It returns a pipe containing the results, one compact JSON value
// per line. If the query doesn't parse, or the input isn't valid JSON, or the
// query fails at run time, the pipe's error status is set.
func (p *Pipe) JQ(query string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return p.WithError(err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return p.WithError(err)
	}
	var output strings.Builder
	dec := json.NewDecoder(p.Reader)
	for {
		var input interface{}
		err := dec.Decode(&input)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.WithError(err)
		}
		iter := code.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := v.(error); ok {
				return p.WithError(err)
			}
			result, err := json.Marshal(v)
			if err != nil {
				return p.WithError(err)
			}
			output.Write(result)
			output.WriteRune('\n')
		}
	}
	return Echo(output.String())
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}
