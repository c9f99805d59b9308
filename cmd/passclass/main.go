// Command passclass prints the generic class definition that pass objects
// reference, for registering it with the Wallet console or API by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diagnosis/wallet-pass/internal/platform/wallet"
)

func main() {
	_ = godotenv.Load()

	issuer := flag.String("issuer", os.Getenv("ISSUER_ID"), "issuer id (defaults to $ISSUER_ID)")
	tmplName := flag.String("template", envOr("PASS_TEMPLATE", wallet.TemplateDigitalDoor), "pass template name")
	suffix := flag.String("suffix", os.Getenv("PASS_CLASS_SUFFIX"), "class id suffix (defaults to the template's)")
	flag.Parse()

	tmpl, err := wallet.LookupTemplate(*tmplName)
	if err != nil {
		fail(err)
	}
	if *suffix != "" {
		tmpl.ClassSuffix = *suffix
	}

	b, err := wallet.NewBuilder(*issuer, tmpl)
	if err != nil {
		fail(err)
	}

	out, err := json.MarshalIndent(b.Class(), "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "passclass:", err)
	os.Exit(1)
}
