// Command keygen writes an RSA key pair for signing tokens.
package main

import (
	"fmt"
	"os"

	"authflow/internal/errors"
	"authflow/internal/infra/auth"

	"github.com/spf13/pflag"
)

func main() {
	out := pflag.StringP("out", "o", "./jwtRS256.key", "private key path; the public key is written to <out>.pub")
	bits := pflag.IntP("bits", "b", 4096, "RSA modulus size")
	force := pflag.BoolP("force", "f", false, "overwrite existing files")
	pflag.Parse()

	if err := run(*out, *bits, *force); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s and %s.pub\n", *out, *out)
}

func run(out string, bits int, force bool) error {
	key, err := auth.GenerateSigningKey(bits)
	if err != nil {
		return err
	}

	pub, err := auth.EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		return err
	}

	if err := writeFile(out, auth.EncodePrivateKeyPEM(key), 0o600, force); err != nil {
		return err
	}

	return writeFile(out+".pub", pub, 0o644, force)
}

func writeFile(path string, data []byte, perm os.FileMode, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()

		return errors.Wrapf(err, "write %s", path)
	}

	return errors.WithStack(f.Close())
}
