// Package format names the output forms an IUTF tree can be rendered in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/iutf-format/iutf/encode - Encode trees to text
package format
