// Package huffcode builds Huffman prefix codes for text payloads and uses
// them to encode text into, and decode text from, strings of '0' and '1'
// characters.
//
// The pipeline is split into independently callable stages:
//
//     ft := huffcode.CountFrequencies(text, huffcode.SplitRunes)
//     root, err := huffcode.BuildTree(ft)
//     cb := huffcode.GenerateCodeBook(root)
//     bits, err := huffcode.Encode(cb, text)
//     text, err = huffcode.Decode(bits, root)
//
// Tree construction is deterministic: leaves are queued in the order the
// FrequencyTable yields them, and ties under the (weight, label) ordering
// are broken last-in-first-out.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
