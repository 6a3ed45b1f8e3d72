package parser

import "io"

// Parser defines a generic interface for decoding a directory-service JSON body into records
type Parser[T any] interface {
	ParseJSON(body io.Reader) ([]T, error)
}
