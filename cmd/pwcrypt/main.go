// Command pwcrypt encodes, verifies and scores passwords from the command
// line.
//
//	pwcrypt encode [password]
//	pwcrypt verify <stored-hash> [password]
//	pwcrypt score [password]
//	pwcrypt info <stored-hash>
//
// A password omitted from the arguments is read from the first line of
// standard input.  Configuration is read from pwcrypt.yaml (see --config)
// and PWCRYPT_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
