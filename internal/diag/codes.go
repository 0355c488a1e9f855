package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Метадата (schema errors)
	MetaInfo               Code = 1000
	MetaMalformedDocument  Code = 1001
	MetaUnsupportedVersion Code = 1002
	MetaMissingField       Code = 1003
	MetaDuplicateTypeID    Code = 1004
	MetaBadTypeDef         Code = 1005
	MetaBadSelector        Code = 1006
	MetaEmptyLabel         Code = 1007
	MetaBadHash            Code = 1008

	// Резолвер реестра типов
	RegInfo                 Code = 2000
	RegUnresolvedReference  Code = 2001
	RegRecursiveType        Code = 2002
	RegUnsupportedPrimitive Code = 2003
	RegTupleTooWide         Code = 2004
	RegVariantIndexRange    Code = 2005
	RegBadContainer         Code = 2006

	// Селекторы и интерфейсы
	SelInfo      Code = 3000
	SelCollision Code = 3001
	SelBadLabel  Code = 3002

	// io и прочие
	IOLoadFileError    Code = 4001
	IOBytecodeMismatch Code = 4002
	IOWriteError       Code = 4003
)

var (
	codeDescription = map[Code]string{
		UnknownCode: "Unknown error",

		MetaInfo:               "Metadata info",
		MetaMalformedDocument:  "Malformed metadata document",
		MetaUnsupportedVersion: "Unsupported metadata version",
		MetaMissingField:       "Missing required metadata field",
		MetaDuplicateTypeID:    "Duplicate type id in registry",
		MetaBadTypeDef:         "Unrecognized type definition",
		MetaBadSelector:        "Malformed selector literal",
		MetaEmptyLabel:         "Empty label",
		MetaBadHash:            "Malformed hash literal",

		RegInfo:                 "Registry info",
		RegUnresolvedReference:  "Unresolved type reference",
		RegRecursiveType:        "Unsupported recursive type",
		RegUnsupportedPrimitive: "Unsupported primitive type",
		RegTupleTooWide:         "Tuple arity not supported",
		RegVariantIndexRange:    "Variant index out of byte range",
		RegBadContainer:         "Malformed container definition",

		SelInfo:      "Selector info",
		SelCollision: "Selector collision",
		SelBadLabel:  "Malformed method label",

		IOLoadFileError:    "Failed to load file",
		IOBytecodeMismatch: "Bytecode does not match declared hash",
		IOWriteError:       "Failed to write output",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("MET%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("REG%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
