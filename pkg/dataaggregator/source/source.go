package source

import "errors"

var UnsupportedSourceError = errors.New("Source does not support this query")
