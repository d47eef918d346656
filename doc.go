// Package huffpack implements a static, single-pass Huffman compressor for
// byte streams.
//
// Compress counts the bytes of its input, builds a Huffman tree from the
// counts, packs the code of every byte into a bit stream, and wraps the
// counts and the bit stream into a self-describing Container.  Decompress
// reads the counts back, rebuilds the very same tree, and walks it to recover
// the input.  No tree structure is stored: BuildTree breaks every tie in a
// fixed order, so equal tables always yield equal trees.
//
// The lower-level pieces (Count, BuildTree, NewCodeBook, Encode, Decode and
// Container) are exported for callers that need them separately.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
