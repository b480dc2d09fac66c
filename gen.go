//go:build gen
// +build gen

package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
)

// Regenerates internal/tables. Run as: go run -tags gen gen.go [args...]
// Arguments are passed through to gentables.
func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)

	cmd := exec.Command("go", "list", "-f", "{{.Root}}",
		"github.com/tharu-jwd/stringutils")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Fatalf("error running command %q: %v\n\n%s\n",
			cmd.Args, err, bytes.TrimSpace(out))
	}
	root := string(bytes.TrimSpace(out))

	args := append([]string{"run", "./internal/gentables"}, os.Args[1:]...)
	cmd = exec.Command("go", args...)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
}
