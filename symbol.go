package huffpack

// Symbol represents one byte of input.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256
