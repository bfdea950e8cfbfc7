package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, keyname string
		nl, echo        bool
		strict, trace   bool
		signed, verbose bool
		prec            uint
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&keyname, "keys", "", "YAML file naming extra keys")
	flag.UintVar(&prec, "p", calc.DefaultPrec, "significant digits of results")
	flag.BoolVar(&nl, "n", false, "clear the calculator before each input line")
	flag.BoolVar(&echo, "echo", false, "print key streams")
	flag.BoolVar(&strict, "strict", false, "reject a second decimal point in a number")
	flag.BoolVar(&trace, "trace", false, "print the display after every change")
	flag.BoolVar(&signed, "signed", false, "allow a negative result to be evaluated again")
	flag.BoolVar(&verbose, "v", false, "print why evaluations fail")
	flag.Parse()
	if prec == 0 {
		log.Fatal("precision must be positive")
	}

	opts := []calc.Option{calc.Prec(prec)}
	if strict {
		opts = append(opts, calc.StrictDecimal())
	}
	if signed {
		opts = append(opts, calc.SignedResult())
	}
	if keyname != "" {
		keys, err := loadKeys(keyname)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, calc.Keys(keys))
	}
	if trace {
		opts = append(opts, calc.OnChange(func(d string) {
			fmt.Println("\t" + d)
		}))
	}
	s := &session{
		calc:    calc.New(opts...),
		out:     os.Stdout,
		echo:    echo,
		clear:   nl,
		verbose: verbose,
	}

	if inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := s.repl(); err != nil {
			log.Fatal(err)
		}
		return
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		err := s.lines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	for _, arg := range flag.Args() {
		if err := s.line(arg); err != nil {
			log.Fatal(err)
		}
	}
}

// infile opens the named input. Closing the result leaves stdin open.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// session feeds lines of key streams to one calculator.
type session struct {
	calc *calc.Calculator
	out  io.Writer
	// echo prints each stream before the display it produces.
	echo bool
	// clear resets the calculator before each line.
	clear bool
	// verbose logs evaluation errors, which otherwise only show as Error.
	verbose bool
	// prompt suppresses printing the display because the prompt shows it.
	prompt bool
}

// lines submits each line of r as a key stream.
func (s *session) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := s.line(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// line submits one key stream and prints the resulting display.
func (s *session) line(stream string) error {
	keys, err := splitKeys(stream)
	if err != nil {
		return err
	}
	if s.clear {
		s.calc.Clear()
	}
	for _, k := range keys {
		if err := s.calc.Submit(k); err != nil && s.verbose {
			log.Printf("%s: %v", stream, err)
		}
	}
	if s.prompt {
		return nil
	}
	if s.echo {
		fmt.Fprintf(s.out, "%s : ", stream)
	}
	_, err = fmt.Fprintln(s.out, s.calc.Display())
	return err
}

func (s *session) repl() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	s.prompt = true
	for {
		text, err := ln.Prompt(s.calc.Display() + " > ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(text)
		if err := s.line(text); err != nil {
			log.Print(err)
		}
	}
}
