package keyring

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/openpgp/armor"
)

const publicKeyBlockType = "PGP PUBLIC KEY BLOCK"

// CheckArmoredPublicKey verifies that data is framed as an ASCII-armored
// PGP public key block. Only the armor framing is parsed; no key material
// is interpreted. Import uses this to warn about stray files in the key
// directory before handing them to gpg.
func CheckArmoredPublicKey(data []byte) error {
	block, err := armor.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an armored key: %w", err)
	}
	if block.Type != publicKeyBlockType {
		return fmt.Errorf("unexpected armor type %q", block.Type)
	}
	return nil
}
