//go:build ignore

package main

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// testSuite describes a single W3C archive to fetch and the subtree
// within it that holds the urdna2015 normalization fixtures.
type testSuite struct {
	name        string
	description string
	url         string
	subdir      string
}

var testSuites = []testSuite{
	{
		name:        "rdf-canon",
		description: "W3C RDF Dataset Canonicalization test suite (urdna2015)",
		url:         "https://github.com/w3c/rdf-canon/archive/refs/heads/main.zip",
		subdir:      "tests",
	},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-directory>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDownloads the W3C rdf-canon urdna2015 test manifest and its\n")
		fmt.Fprintf(os.Stderr, "input/expected N-Quads fixtures to the given directory.\n")
		fmt.Fprintf(os.Stderr, "\nExample: %s ./testdata/rdf-canon\n", os.Args[0])
		os.Exit(1)
	}

	outputDir := os.Args[1]
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Downloading rdf-canon test suite to: %s\n\n", outputDir)

	for _, suite := range testSuites {
		fmt.Printf("Downloading %s...\n", suite.description)
		if err := downloadTestSuite(suite, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading %s: %v\n", suite.name, err)
			os.Exit(1)
		}
		fmt.Printf("done %s\n\n", suite.name)
	}

	fmt.Printf("Fixtures are under %s — each manN-in.nq/manN-urdna2015.nq pair\n", outputDir)
	fmt.Printf("is a (dataset, expected canonical form) test case.\n")
}

func downloadTestSuite(suite testSuite, outputDir string) error {
	tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("%s-download.zip", suite.name))
	defer os.Remove(tempFile)

	fmt.Printf("  Fetching from %s...\n", suite.url)
	resp, err := http.Get(suite.url)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	out, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to save download: %w", err)
	}
	out.Close()

	fmt.Printf("  Extracting %s/...\n", suite.subdir)
	return extractZip(tempFile, outputDir, suite)
}

// extractZip pulls only the files under suite.subdir out of the
// archive, stripping both the GitHub-generated top-level directory and
// the subdir prefix itself so fixtures land directly in outputDir.
func extractZip(zipFile, outputDir string, suite testSuite) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	var baseDir string
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") && baseDir == "" {
			baseDir = f.Name
			break
		}
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		relPath := strings.TrimPrefix(f.Name, baseDir)
		idx := strings.Index(relPath, suite.subdir+"/")
		if idx < 0 {
			continue
		}
		relPath = relPath[idx+len(suite.subdir)+1:]
		if relPath == "" {
			continue
		}

		destPath := filepath.Join(outputDir, relPath)
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}

		out, err := os.Create(destPath)
		if err != nil {
			rc.Close()
			return err
		}

		_, err = io.Copy(out, rc)
		rc.Close()
		out.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
