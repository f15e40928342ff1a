package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/devcraft/portfolio-api/internal/config"
)

// envcheck lints a .env file before deployment: duplicate keys, inline
// comment-like text in values, and app passwords pasted with their grouping
// spaces are the failure modes that have bitten this setup in production.

type envEntry struct {
	value     string
	line      int
	duplicate bool
}

// Duplicate detection and line reporting need the raw file layout, which the
// godotenv parser flattens away, so the file is walked line by line here.
func parseDotenv(path string) (map[string]envEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]envEntry)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := line[eq+1:]
		if existing, ok := entries[key]; ok {
			existing.value = value
			existing.line = lineNum
			existing.duplicate = true
			entries[key] = existing
			continue
		}
		entries[key] = envEntry{value: value, line: lineNum}
	}
	return entries, scanner.Err()
}

var passwordKeys = []string{"SMTP_PASSWORD", "GMAIL_APP_PASSWORD", "SMTP_PASS"}

func main() {
	log.SetFlags(0)

	path := flag.String("file", ".env", "path to the .env file to lint")
	flag.Parse()

	entries, err := parseDotenv(*path)
	if err != nil {
		log.Printf("no readable .env file at %s: %v", *path, err)
		os.Exit(1)
	}

	ok := true

	for key, entry := range entries {
		if entry.duplicate {
			log.Printf("duplicate key detected: %s (line %d)", key, entry.line)
			ok = false
		}
	}

	for key, entry := range entries {
		if strings.Contains(entry.value, "//") || strings.Contains(entry.value, "#") {
			log.Printf("inline comment-like text detected in value for %s, remove comments from the same line", key)
			ok = false
		}
	}

	for _, key := range passwordKeys {
		entry, present := entries[key]
		if !present {
			continue
		}
		raw := strings.TrimSpace(entry.value)
		if strings.ContainsAny(raw, " \t") {
			log.Printf("%s contains spaces, suggestion: remove spaces -> %s", key, config.NormalizeAppPassword(raw))
		}
	}

	if _, present := entries["SENDGRID_API_KEY"]; !present {
		log.Println("SENDGRID_API_KEY not found, on managed hosts SendGrid is recommended to avoid SMTP network issues")
	}

	if !ok {
		log.Println("problems found in .env, fix the warnings above before deploying")
		os.Exit(2)
	}

	fmt.Println(".env looks ok (no duplicate keys, no inline comments)")
}
