package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Ошибки и предупреждения разбора директивы
	FmtInfo                   Code = 1000
	FmtNoPositionalWidth      Code = 1001
	FmtNoPositionalPrecision  Code = 1002
	FmtUnknownType            Code = 1003
	FmtIncompatibleLengthType Code = 1004

	FmtFlagDoesNothing      Code = 1101
	FmtRepeatFlag           Code = 1102
	FmtWidthDoesNothing     Code = 1103
	FmtPrecisionDoesNothing Code = 1104
	FmtDoesNotPrint         Code = 1105

	// Ошибки уровня вызова (driver, планировщик, аргументы)
	CallInfo           Code = 2000
	CallPositionMixed  Code = 2001
	CallSlotUnassigned Code = 2002
	CallSlotConflict   Code = 2003
	CallArgMissing     Code = 2004
	CallArgType        Code = 2005
	CallNilTarget      Code = 2006
	CallNotImplemented Code = 2007
	CallNilTemplate    Code = 2008

	// Ошибки стока вывода
	SinkInfo        Code = 3000
	SinkWriteFailed Code = 3001
	SinkOverflow    Code = 3002
)

func (c Code) String() string {
	switch c {
	case FmtInfo:
		return "FmtInfo"
	case FmtNoPositionalWidth:
		return "FmtNoPositionalWidth"
	case FmtNoPositionalPrecision:
		return "FmtNoPositionalPrecision"
	case FmtUnknownType:
		return "FmtUnknownType"
	case FmtIncompatibleLengthType:
		return "FmtIncompatibleLengthType"
	case FmtFlagDoesNothing:
		return "FmtFlagDoesNothing"
	case FmtRepeatFlag:
		return "FmtRepeatFlag"
	case FmtWidthDoesNothing:
		return "FmtWidthDoesNothing"
	case FmtPrecisionDoesNothing:
		return "FmtPrecisionDoesNothing"
	case FmtDoesNotPrint:
		return "FmtDoesNotPrint"
	case CallInfo:
		return "CallInfo"
	case CallPositionMixed:
		return "CallPositionMixed"
	case CallSlotUnassigned:
		return "CallSlotUnassigned"
	case CallSlotConflict:
		return "CallSlotConflict"
	case CallArgMissing:
		return "CallArgMissing"
	case CallArgType:
		return "CallArgType"
	case CallNilTarget:
		return "CallNilTarget"
	case CallNotImplemented:
		return "CallNotImplemented"
	case CallNilTemplate:
		return "CallNilTemplate"
	case SinkInfo:
		return "SinkInfo"
	case SinkWriteFailed:
		return "SinkWriteFailed"
	case SinkOverflow:
		return "SinkOverflow"
	}
	return "UnknownCode"
}

// ID возвращает стабильный машинный идентификатор вида "FMT1003".
func (c Code) ID() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("SNK%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("CALL%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("FMT%04d", uint16(c))
	}
	return fmt.Sprintf("DIAG%04d", uint16(c))
}

// IsError reports whether the code aborts the whole call, mirroring the
// error/warning split of the format grammar: 1000-series warnings are
// the 11xx band; every other code is fatal except UnknownCode and the
// x000 Info codes.
func (c Code) IsError() bool {
	switch c {
	case FmtNoPositionalWidth, FmtNoPositionalPrecision,
		FmtUnknownType, FmtIncompatibleLengthType,
		CallPositionMixed, CallSlotUnassigned, CallSlotConflict,
		CallArgMissing, CallArgType, CallNilTarget,
		CallNotImplemented, CallNilTemplate,
		SinkWriteFailed, SinkOverflow:
		return true
	}
	return false
}

// IsWarning reports whether the code is a recoverable normalisation.
func (c Code) IsWarning() bool {
	switch c {
	case FmtFlagDoesNothing, FmtRepeatFlag, FmtWidthDoesNothing,
		FmtPrecisionDoesNothing, FmtDoesNotPrint:
		return true
	}
	return false
}
