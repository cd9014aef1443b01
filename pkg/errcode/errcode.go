package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputOpenError
	InputSheetError
	InputColumnError
	InputEmptyError

	// Static table errors
	OverridesLoadError
	BiosamplesLoadError

	// Registry errors
	RegistryUnknownError
	RegistryTransportError
	RegistryStatusError
	RegistryDecodeError
	RegistrySFGAOpenError
	RegistrySFGAQueryError

	// Resolver errors
	ResolverInputError

	// Mapper errors
	MapperRowCountError
	MapperTaxaMismatchError

	// Output errors
	OutputCreateError
	OutputWriteError
)
