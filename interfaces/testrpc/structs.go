package testrpc

import (
	"math"

	"github.com/reoring/rpcbase"
)

func newInt() *rpcbase.Integer[int32] { return rpcbase.NewInteger[int32](math.MinInt32, math.MaxInt32) }

func newIntArray() *rpcbase.Array[*rpcbase.Integer[int32]] { return rpcbase.NewArray(newInt, 0, 20) }

func newIntMap() *rpcbase.Map[*rpcbase.Integer[int32]] { return rpcbase.NewMap(newInt, 0, 20) }

// TdResult is a typedef of Result.
type TdResult = rpcbase.Enum[Result]

func NewTdResult() *TdResult { return rpcbase.NewEnum(ResultDef) }

// TdResultArr is a typedef of an array of TdResult.
type TdResultArr = rpcbase.Array[*TdResult]

func NewTdResultArr() *TdResultArr { return rpcbase.NewArray(NewTdResult, 1, 10) }

// TdResultArrMap is a typedef of a map of TdResultArr.
type TdResultArrMap = rpcbase.Map[*TdResultArr]

func NewTdResultArrMap() *TdResultArrMap { return rpcbase.NewMap(NewTdResultArr, 1, 10) }

type Choice struct {
	rpcbase.Struct
	ChoiceID   rpcbase.Mandatory[*rpcbase.Integer[int32]]
	MenuName   rpcbase.Mandatory[*rpcbase.String]
	VrCommands rpcbase.Mandatory[*rpcbase.Map[*rpcbase.String]]
}

func NewChoice() *Choice {
	s := &Choice{
		ChoiceID: rpcbase.MandatoryOf(rpcbase.NewInteger[int32](0, 65535)),
		MenuName: rpcbase.MandatoryOf(rpcbase.NewString(0, 500)),
		VrCommands: rpcbase.MandatoryOf(rpcbase.NewMap(func() *rpcbase.String {
			return rpcbase.NewString(0, 99)
		}, 1, 100)),
	}
	s.Define(
		rpcbase.F("choiceID", &s.ChoiceID),
		rpcbase.F("menuName", &s.MenuName),
		rpcbase.F("vrCommands", &s.VrCommands),
	)
	return s
}

// NewChoiceWith builds an initialized Choice from its mandatory parameters.
func NewChoiceWith(choiceID int32, menuName string, vrCommands map[string]string) *Choice {
	s := NewChoice()
	s.ChoiceID.Get().Set(choiceID)
	s.MenuName.Get().Set(menuName)
	cmds := s.VrCommands.Get()
	cmds.MarkInitialized()
	for k, v := range vrCommands {
		cmds.Entry(k).Set(v)
	}
	return s
}

type TdStruct struct {
	rpcbase.Struct
	ResArrMap         rpcbase.Mandatory[*TdResultArrMap]
	OptionalResArrMap rpcbase.Optional[*TdResultArrMap]
}

func NewTdStruct() *TdStruct {
	s := &TdStruct{
		ResArrMap:         rpcbase.MandatoryOf(NewTdResultArrMap()),
		OptionalResArrMap: rpcbase.OptionalOf(NewTdResultArrMap),
	}
	s.Define(
		rpcbase.F("resArrMap", &s.ResArrMap),
		rpcbase.F("optionalResArrMap", &s.OptionalResArrMap),
	)
	return s
}

type TestStructWithNullableParam struct {
	rpcbase.Struct
	NullableInt rpcbase.Mandatory[*rpcbase.Nullable[*rpcbase.Integer[int32]]]
}

func NewTestStructWithNullableParam() *TestStructWithNullableParam {
	s := &TestStructWithNullableParam{
		NullableInt: rpcbase.MandatoryOf(rpcbase.NullableOf(newInt())),
	}
	s.Define(rpcbase.F("nullableInt", &s.NullableInt))
	return s
}

type TestStructWithNullableStructParam struct {
	rpcbase.Struct
	NullableEnum    rpcbase.Mandatory[*rpcbase.Nullable[*rpcbase.Enum[ImageType]]]
	NonNullableEnum rpcbase.Mandatory[*rpcbase.Enum[ImageType]]
}

func NewTestStructWithNullableStructParam() *TestStructWithNullableStructParam {
	s := &TestStructWithNullableStructParam{
		NullableEnum:    rpcbase.MandatoryOf(rpcbase.NullableOf(rpcbase.NewEnum(ImageTypeDef))),
		NonNullableEnum: rpcbase.MandatoryOf(rpcbase.NewEnum(ImageTypeDef)),
	}
	s.Define(
		rpcbase.F("nullableEnum", &s.NullableEnum),
		rpcbase.F("nonNullableEnum", &s.NonNullableEnum),
	)
	return s
}

type StructWithNullableTypedef struct {
	rpcbase.Struct
	NullableTdResult rpcbase.Mandatory[*rpcbase.Nullable[*TdResult]]
}

func NewStructWithNullableTypedef() *StructWithNullableTypedef {
	s := &StructWithNullableTypedef{
		NullableTdResult: rpcbase.MandatoryOf(rpcbase.NullableOf(NewTdResult())),
	}
	s.Define(rpcbase.F("nullableTdResult", &s.NullableTdResult))
	return s
}

type StructWithNullableMapOfNullableInts struct {
	rpcbase.Struct
	NullableMap rpcbase.Mandatory[*rpcbase.Nullable[*rpcbase.Map[*rpcbase.Nullable[*rpcbase.Integer[int32]]]]]
}

func NewStructWithNullableMapOfNullableInts() *StructWithNullableMapOfNullableInts {
	s := &StructWithNullableMapOfNullableInts{
		NullableMap: rpcbase.MandatoryOf(rpcbase.NullableOf(rpcbase.NewMap(func() *rpcbase.Nullable[*rpcbase.Integer[int32]] {
			return rpcbase.NullableOf(newInt())
		}, 0, 20))),
	}
	s.Define(rpcbase.F("nullableMap", &s.NullableMap))
	return s
}

type EmptyStruct struct {
	rpcbase.Struct
}

func NewEmptyStruct() *EmptyStruct {
	s := &EmptyStruct{}
	s.Define()
	return s
}

type StructWithOptionalEmptyStructField struct {
	rpcbase.Struct
	EmptyOne rpcbase.Optional[*EmptyStruct]
}

func NewStructWithOptionalEmptyStructField() *StructWithOptionalEmptyStructField {
	s := &StructWithOptionalEmptyStructField{
		EmptyOne: rpcbase.OptionalOf(NewEmptyStruct),
	}
	s.Define(rpcbase.F("emptyOne", &s.EmptyOne))
	return s
}

type StructWithMandatoryEmptyStructField struct {
	rpcbase.Struct
	EmptyOne rpcbase.Mandatory[*EmptyStruct]
}

func NewStructWithMandatoryEmptyStructField() *StructWithMandatoryEmptyStructField {
	s := &StructWithMandatoryEmptyStructField{
		EmptyOne: rpcbase.MandatoryOf(NewEmptyStruct()),
	}
	s.Define(rpcbase.F("emptyOne", &s.EmptyOne))
	return s
}

type StructWithOneOptionalIntField struct {
	rpcbase.Struct
	OptionalInt rpcbase.Optional[*rpcbase.Integer[int32]]
}

func NewStructWithOneOptionalIntField() *StructWithOneOptionalIntField {
	s := &StructWithOneOptionalIntField{
		OptionalInt: rpcbase.OptionalOf(newInt),
	}
	s.Define(rpcbase.F("optionalInt", &s.OptionalInt))
	return s
}

type StructWithFieldOfStructThatMightBeEmpty struct {
	rpcbase.Struct
	FieldThatMightBeEmpty rpcbase.Mandatory[*StructWithOneOptionalIntField]
}

func NewStructWithFieldOfStructThatMightBeEmpty() *StructWithFieldOfStructThatMightBeEmpty {
	s := &StructWithFieldOfStructThatMightBeEmpty{
		FieldThatMightBeEmpty: rpcbase.MandatoryOf(NewStructWithOneOptionalIntField()),
	}
	s.Define(rpcbase.F("fieldThatMightBeEmpty", &s.FieldThatMightBeEmpty))
	return s
}

type StructWithNullableOptionalMap struct {
	rpcbase.Struct
	NullableOptionalIntMap rpcbase.Optional[*rpcbase.Nullable[*rpcbase.Map[*rpcbase.Integer[int32]]]]
}

func NewStructWithNullableOptionalMap() *StructWithNullableOptionalMap {
	s := &StructWithNullableOptionalMap{
		NullableOptionalIntMap: rpcbase.OptionalOf(func() *rpcbase.Nullable[*rpcbase.Map[*rpcbase.Integer[int32]]] {
			return rpcbase.NullableOf(newIntMap())
		}),
	}
	s.Define(rpcbase.F("nullableOptionalIntMap", &s.NullableOptionalIntMap))
	return s
}

type StructWithOptionalIntArray struct {
	rpcbase.Struct
	OptionalIntArray rpcbase.Optional[*rpcbase.Array[*rpcbase.Integer[int32]]]
}

func NewStructWithOptionalIntArray() *StructWithOptionalIntArray {
	s := &StructWithOptionalIntArray{
		OptionalIntArray: rpcbase.OptionalOf(newIntArray),
	}
	s.Define(rpcbase.F("optionalIntArray", &s.OptionalIntArray))
	return s
}

type StructWithMandatoryIntArray struct {
	rpcbase.Struct
	MandatoryIntArray rpcbase.Mandatory[*rpcbase.Array[*rpcbase.Integer[int32]]]
}

func NewStructWithMandatoryIntArray() *StructWithMandatoryIntArray {
	s := &StructWithMandatoryIntArray{
		MandatoryIntArray: rpcbase.MandatoryOf(newIntArray()),
	}
	s.Define(rpcbase.F("mandatoryIntArray", &s.MandatoryIntArray))
	return s
}

type StructWithOptionalIntMap struct {
	rpcbase.Struct
	OptionalIntMap rpcbase.Optional[*rpcbase.Map[*rpcbase.Integer[int32]]]
}

func NewStructWithOptionalIntMap() *StructWithOptionalIntMap {
	s := &StructWithOptionalIntMap{
		OptionalIntMap: rpcbase.OptionalOf(newIntMap),
	}
	s.Define(rpcbase.F("optionalIntMap", &s.OptionalIntMap))
	return s
}

type StructWithMandatoryIntMap struct {
	rpcbase.Struct
	MandatoryIntMap rpcbase.Mandatory[*rpcbase.Map[*rpcbase.Integer[int32]]]
}

func NewStructWithMandatoryIntMap() *StructWithMandatoryIntMap {
	s := &StructWithMandatoryIntMap{
		MandatoryIntMap: rpcbase.MandatoryOf(newIntMap()),
	}
	s.Define(rpcbase.F("mandatoryIntMap", &s.MandatoryIntMap))
	return s
}
