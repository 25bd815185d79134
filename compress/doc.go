// Package compress provides optional compression codecs for the value and
// qualifier payloads the codec package assembles.
//
// Compression is applied after the propblock framing: the row key,
// column family, and visibility stay uncompressed and directly
// comparable by the storage engine, while the value and qualifier
// blocks can trade encode/decode CPU for on-disk size.
//
//   - None: no compression, for data that is already small or incompressible.
//   - Zstd: best compression ratio, moderate speed; good for cold data.
//   - S2: a Snappy-family codec balancing compression and speed.
//   - LZ4: fastest decompression, moderate compression ratio.
//
// Compressor and Decompressor are split so that asymmetric implementations
// (e.g. a format that's expensive to write but cheap to read) can implement
// only what they need; Codec composes both for the common case.
package compress
