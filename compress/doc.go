// Package compress provides the codecs used when writing MAT-files.
//
// Two distinct jobs are covered:
//
//  1. Container compression. A compressed MAT-file stores all of its named
//     arrays inside one miCOMPRESSED element whose payload is a zlib (RFC 1950)
//     stream. ZlibCompressor implements this as a block Codec.
//
//  2. Transport compression. The finished file can additionally be wrapped in
//     a general purpose stream (gzip, zstd, S2 or LZ4) on its way to the
//     destination, e.g. to ship "results.mat.zst". Readers must unwrap the
//     stream before handing the bytes to a MAT reader. These codecs implement
//     StreamCodec and are created with CreateStreamCodec.
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type StreamCodec interface {
//	    Type() format.CompressionType
//	    NewWriter(w io.Writer) (io.WriteCloser, error)
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	}
//
// # Choosing a transport
//
// | Transport | Library                    | Notes                                 |
// |-----------|----------------------------|---------------------------------------|
// | None      | -                          | Plain MAT-file, default               |
// | Gzip      | klauspost/compress/gzip    | Universally readable (`gunzip`)       |
// | Zstd      | klauspost/compress/zstd    | Best ratio; libzstd with -tags gozstd |
// | S2        | klauspost/compress/s2      | Fastest, Snappy compatible reader     |
// | LZ4       | pierrec/lz4/v4             | Fast decompression, `lz4` CLI frames  |
//
// Transport compression rarely pays off on top of container compression;
// it is mainly useful for large uncompressed files or archival pipelines that
// standardize on one codec.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Stream writers and readers returned
// by a StreamCodec are not.
package compress
