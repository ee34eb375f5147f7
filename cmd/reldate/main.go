package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aaronyao/dateparser"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func main() {
	locale := flag.String("locale", "", "locale hint, e.g. en or zh-CN (default: scan all locales)")
	baseArg := flag.String("base", "", "base time in RFC 3339 (default: now)")
	list := flag.Bool("locales", false, "list supported locales and exit")
	flag.Parse()

	if err := run(*locale, *baseArg, *list, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "reldate:", err)
		os.Exit(1)
	}
}

func run(locale, baseArg string, list bool, args []string) error {
	parser, err := dateparser.NewParser()
	if err != nil {
		return err
	}

	if list {
		namer := display.English.Languages()
		for _, key := range parser.Locales() {
			fmt.Printf("%-4s %s\n", key, namer.Name(language.Make(key)))
		}
		return nil
	}

	base := time.Now()
	if baseArg != "" {
		parsed, err := time.Parse(time.RFC3339, baseArg)
		if err != nil {
			return fmt.Errorf("parse -base: %w", err)
		}
		base = parsed
	}

	exprs := args
	if len(exprs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	for _, expr := range exprs {
		var hints []string
		if locale != "" {
			hints = append(hints, locale)
		}
		target, ok := parser.ResolveAt(expr, base, hints...)
		if !ok {
			fmt.Printf("%-24s -> no match\n", expr)
			continue
		}
		fmt.Printf("%-24s -> %s (%s)\n", expr, target.Format("2006-01-02 15:04:05"), target.Weekday())
	}

	return nil
}
