package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sagernet/sing-deque/common"
	E "github.com/sagernet/sing-deque/common/exceptions"
	"github.com/sagernet/sing-deque/common/x/deque"

	"github.com/sirupsen/logrus"
)

const (
	opFirst    = "first"
	opLast     = "last"
	opPopFirst = "pop-first"
	opPopLast  = "pop-last"
	opGet      = "get"
	opRGet     = "rget"
	opSize     = "size"
	opEmpty    = "empty"
	opPrint    = "print"
	opCopy     = "copy"
)

const absent = "<none>"

type step struct {
	op  string
	arg int
}

func parseStep(text string) (step, error) {
	op, argText, hasArg := strings.Cut(text, ":")
	switch op {
	case opFirst, opLast, opGet, opRGet:
		if !hasArg {
			return step{}, E.New("step ", op, " requires an argument")
		}
		arg, err := strconv.Atoi(argText)
		if err != nil {
			return step{}, E.Cause(err, "parse step ", text)
		}
		return step{op, arg}, nil
	case opPopFirst, opPopLast, opSize, opEmpty, opPrint, opCopy:
		if hasArg {
			return step{}, E.New("step ", op, " takes no argument")
		}
		return step{op: op}, nil
	default:
		return step{}, E.New("unknown step: ", text)
	}
}

func parseScript(args []string) ([]step, error) {
	script := make([]step, 0, len(args))
	for _, arg := range args {
		s, err := parseStep(arg)
		if err != nil {
			return nil, err
		}
		script = append(script, s)
	}
	return script, nil
}

func defaultScript() []step {
	return []step{
		{opFirst, 5}, {opFirst, 10}, {op: opSize},
		{opFirst, 15}, {opLast, 25}, {opLast, 30}, {opLast, 35}, {op: opSize},
		{op: opPrint},
		{opGet, 0}, {opGet, 1}, {opGet, 2},
		{opRGet, 3}, {opRGet, 4}, {opRGet, 5},
		{op: opPopFirst}, {op: opSize},
		{op: opPopLast}, {op: opSize},
		{op: opCopy},
	}
}

func formatItem(item int, ok bool) string {
	if !ok {
		return absent
	}
	return strconv.Itoa(item)
}

func runScript(writer io.Writer, script []step, logger *logrus.Entry) error {
	d := deque.New[int]()
	for _, s := range script {
		logger.Trace("step ", s.op, " ", s.arg)
		var line string
		switch s.op {
		case opFirst:
			d.AddFirst(s.arg)
			continue
		case opLast:
			d.AddLast(s.arg)
			continue
		case opPopFirst:
			line = "removeFirst(): " + formatItem(d.RemoveFirst())
		case opPopLast:
			line = "removeLast(): " + formatItem(d.RemoveLast())
		case opGet:
			line = fmt.Sprint("get(", s.arg, "): ", formatItem(d.Get(s.arg)))
		case opRGet:
			line = fmt.Sprint("getRecursive(", s.arg, "): ", formatItem(d.GetRecursive(s.arg)))
		case opSize:
			line = "size(): " + strconv.Itoa(d.Size())
		case opEmpty:
			line = "isEmpty(): " + strconv.FormatBool(d.IsEmpty())
		case opPrint:
			line = strings.Join(common.Map(d.Array(), strconv.Itoa), " ")
		case opCopy:
			d = deque.NewFrom(d)
			line = "copy: " + d.String()
		default:
			return E.New("unknown step: ", s.op)
		}
		_, err := fmt.Fprintln(writer, line)
		if err != nil {
			return E.Cause(err, "write result")
		}
	}
	logger.Debug("final size ", d.Size())
	return nil
}
