package testrpc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/interfaces/testrpc"
)

func marshal(t *testing.T, v rpcbase.Value) string {
	t.Helper()
	b, err := rpcbase.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func unmarshal(t *testing.T, in string, v rpcbase.Value) {
	t.Helper()
	require.NoError(t, rpcbase.Unmarshal([]byte(in), v))
}

func TestChoice_Map(t *testing.T) {
	c := testrpc.NewChoice()
	assert.False(t, c.IsInitialized())
	assert.False(t, c.IsValid())

	c = testrpc.NewChoiceWith(1, "Menu name", map[string]string{"one": "First value", "two": "Second value"})
	assert.True(t, c.IsInitialized())
	assert.True(t, c.IsValid())
	assert.Equal(t, `{"choiceID":1,"menuName":"Menu name","vrCommands":{"one":"First value","two":"Second value"}}`+"\n", marshal(t, c))
}

func TestTdStruct_TypedefComposition(t *testing.T) {
	ts := testrpc.NewTdStruct()
	ts.ResArrMap.Get().Entry("Hello").Push().Set(testrpc.RSuccess)
	ts.OptionalResArrMap.Get().Entry("World").Push().Set(testrpc.RInvalidData)
	assert.True(t, ts.IsInitialized())
	assert.True(t, ts.IsValid())
	assert.Equal(t, `{"optionalResArrMap":{"World":["INVALID_DATA"]},"resArrMap":{"Hello":["SUCCESS"]}}`+"\n", marshal(t, ts))
}

func TestNullableParam_SetToNull(t *testing.T) {
	s := testrpc.NewTestStructWithNullableParam()
	assert.False(t, s.IsInitialized())
	assert.False(t, s.IsValid())
	assert.False(t, s.NullableInt.IsValid())
	assert.False(t, s.NullableInt.Get().IsNull())

	s.NullableInt.Get().SetToNull()
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.True(t, s.NullableInt.Get().IsNull())
	assert.True(t, s.NullableInt.IsValid())
	assert.True(t, s.NullableInt.IsInitialized())
}

func TestNullableParam_FromJSON(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		in := `{"nullableInt":null}` + "\n"
		s := testrpc.NewTestStructWithNullableParam()
		unmarshal(t, in, s)
		assert.True(t, s.IsInitialized())
		assert.True(t, s.IsValid())
		assert.True(t, s.NullableInt.Get().IsNull())
		assert.Equal(t, in, marshal(t, s))
	})
	t.Run("value", func(t *testing.T) {
		in := `{"nullableInt":3}` + "\n"
		s := testrpc.NewTestStructWithNullableParam()
		unmarshal(t, in, s)
		assert.True(t, s.IsInitialized())
		assert.True(t, s.IsValid())
		assert.False(t, s.NullableInt.Get().IsNull())
		assert.Equal(t, int32(3), s.NullableInt.Get().Get().Get())
		assert.Equal(t, in, marshal(t, s))
	})
}

func TestNullableEnum(t *testing.T) {
	s := testrpc.NewTestStructWithNullableStructParam()
	s.NullableEnum.Get().Get().Set(testrpc.ITDynamic)
	s.NonNullableEnum.Get().Set(testrpc.ITStatic)
	assert.True(t, s.IsInitialized())
	assert.True(t, s.IsValid())
	assert.Equal(t, `{"nonNullableEnum":"STATIC","nullableEnum":"DYNAMIC"}`+"\n", marshal(t, s))

	s.NullableEnum.Get().SetToNull()
	assert.True(t, s.IsInitialized())
	assert.True(t, s.IsValid())
	assert.Equal(t, `{"nonNullableEnum":"STATIC","nullableEnum":null}`+"\n", marshal(t, s))

	// writing after a null clears it
	s.NullableEnum.Get().Get().Set(testrpc.ITStatic)
	assert.False(t, s.NullableEnum.Get().IsNull())
	assert.Equal(t, `{"nonNullableEnum":"STATIC","nullableEnum":"STATIC"}`+"\n", marshal(t, s))
}

func TestNullableTypedef(t *testing.T) {
	s := testrpc.NewStructWithNullableTypedef()
	assert.False(t, s.IsInitialized())
	assert.False(t, s.IsValid())

	s.NullableTdResult.Get().Get().Set(testrpc.RSuccess)
	assert.True(t, s.IsInitialized())
	assert.True(t, s.IsValid())
	assert.Equal(t, testrpc.RSuccess, s.NullableTdResult.Get().Get().Get())

	s.NullableTdResult.Get().SetToNull()
	assert.Equal(t, `{"nullableTdResult":null}`+"\n", marshal(t, s))
}

func TestNullableMapOfNullableInts(t *testing.T) {
	t.Run("null map", func(t *testing.T) {
		s := testrpc.NewStructWithNullableMapOfNullableInts()
		assert.False(t, s.IsInitialized())
		assert.False(t, s.IsValid())
		assert.False(t, s.NullableMap.Get().IsNull())

		s.NullableMap.Get().SetToNull()
		assert.True(t, s.IsInitialized())
		assert.True(t, s.IsValid())
		assert.True(t, s.NullableMap.Get().IsNull())
		assert.Equal(t, `{"nullableMap":null}`+"\n", marshal(t, s))
	})
	t.Run("null element", func(t *testing.T) {
		s := testrpc.NewStructWithNullableMapOfNullableInts()
		s.NullableMap.Get().Get().Entry("Hello").SetToNull()

		assert.True(t, s.IsInitialized())
		assert.True(t, s.IsValid())
		assert.False(t, s.NullableMap.Get().IsNull())
		assert.True(t, s.NullableMap.Get().Get().Entry("Hello").IsNull())
		assert.Equal(t, `{"nullableMap":{"Hello":null}}`+"\n", marshal(t, s))
	})
}

func TestEmptyStruct(t *testing.T) {
	e := testrpc.NewEmptyStruct()
	assert.True(t, e.IsEmpty())
	assert.False(t, e.IsValid())
	assert.False(t, e.IsInitialized())

	e.MarkInitialized()
	assert.True(t, e.IsEmpty())
	assert.True(t, e.IsValid())
	assert.True(t, e.IsInitialized())
	assert.Equal(t, "{}\n", marshal(t, e))
}

func TestOptionalEmptyStructField(t *testing.T) {
	t.Run("inner marked", func(t *testing.T) {
		oe := testrpc.NewStructWithOptionalEmptyStructField()
		assert.False(t, oe.IsValid())
		assert.False(t, oe.IsInitialized())

		oe.EmptyOne.Get().MarkInitialized()
		assert.True(t, oe.IsValid())
		assert.True(t, oe.IsInitialized())
		assert.False(t, oe.IsEmpty())
		assert.True(t, oe.EmptyOne.Get().IsEmpty())
	})
	t.Run("outer marked", func(t *testing.T) {
		oe := testrpc.NewStructWithOptionalEmptyStructField()
		oe.MarkInitialized()
		assert.True(t, oe.IsValid())
		assert.True(t, oe.IsInitialized())
		assert.Equal(t, "{}\n", marshal(t, oe))
	})
}

func TestMandatoryEmptyStructField(t *testing.T) {
	me := testrpc.NewStructWithMandatoryEmptyStructField()
	assert.False(t, me.IsValid())
	assert.False(t, me.IsInitialized())
	assert.False(t, me.IsEmpty())

	me.EmptyOne.Get().MarkInitialized()
	assert.True(t, me.IsValid())
	assert.True(t, me.IsInitialized())
	assert.Equal(t, `{"emptyOne":{}}`+"\n", marshal(t, me))
}

func TestOneOptionalIntField(t *testing.T) {
	t.Run("marked", func(t *testing.T) {
		s := testrpc.NewStructWithOneOptionalIntField()
		assert.False(t, s.IsValid())
		assert.False(t, s.IsInitialized())
		s.MarkInitialized()
		assert.True(t, s.IsInitialized())
		assert.True(t, s.IsValid())
		assert.Equal(t, "{}\n", marshal(t, s))
	})
	t.Run("set", func(t *testing.T) {
		s := testrpc.NewStructWithOneOptionalIntField()
		s.OptionalInt.Get().Set(13)
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
	})
	t.Run("json", func(t *testing.T) {
		in := `{"optionalInt":11}` + "\n"
		s := testrpc.NewStructWithOneOptionalIntField()
		unmarshal(t, in, s)
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.Equal(t, int32(11), s.OptionalInt.Get().Get())
		assert.Equal(t, in, marshal(t, s))
	})
}

func TestFieldOfStructThatMightBeEmpty(t *testing.T) {
	t.Run("inner set", func(t *testing.T) {
		s := testrpc.NewStructWithFieldOfStructThatMightBeEmpty()
		assert.False(t, s.IsValid())
		assert.False(t, s.IsInitialized())
		// a mandatory field keeps the record from ever being empty
		assert.False(t, s.IsEmpty())
		assert.True(t, s.FieldThatMightBeEmpty.Get().IsEmpty())

		s.FieldThatMightBeEmpty.Get().OptionalInt.Get().Set(5)
		assert.False(t, s.FieldThatMightBeEmpty.Get().IsEmpty())
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
	})
	t.Run("inner marked", func(t *testing.T) {
		s := testrpc.NewStructWithFieldOfStructThatMightBeEmpty()
		s.FieldThatMightBeEmpty.Get().MarkInitialized()
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.Equal(t, `{"fieldThatMightBeEmpty":{}}`+"\n", marshal(t, s))
	})
	t.Run("json", func(t *testing.T) {
		in := `{"fieldThatMightBeEmpty":{"optionalInt":12}}` + "\n"
		s := testrpc.NewStructWithFieldOfStructThatMightBeEmpty()
		unmarshal(t, in, s)
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.Equal(t, int32(12), s.FieldThatMightBeEmpty.Get().OptionalInt.Get().Get())
		assert.Equal(t, in, marshal(t, s))
	})
}

func TestNullableOptionalMap(t *testing.T) {
	t.Run("entry", func(t *testing.T) {
		s := testrpc.NewStructWithNullableOptionalMap()
		assert.True(t, s.IsEmpty())
		assert.False(t, s.IsValid())
		assert.False(t, s.IsInitialized())

		s.NullableOptionalIntMap.Get().Get().Entry("a").Set(5)
		assert.False(t, s.IsEmpty())
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
	})
	t.Run("marked", func(t *testing.T) {
		s := testrpc.NewStructWithNullableOptionalMap()
		s.MarkInitialized()
		assert.True(t, s.IsEmpty())
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.Equal(t, "{}\n", marshal(t, s))
	})
	t.Run("nulled", func(t *testing.T) {
		s := testrpc.NewStructWithNullableOptionalMap()
		s.NullableOptionalIntMap.Get().SetToNull()
		assert.False(t, s.IsEmpty())
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.Equal(t, `{"nullableOptionalIntMap":null}`+"\n", marshal(t, s))
	})
	t.Run("null json", func(t *testing.T) {
		in := `{"nullableOptionalIntMap":null}` + "\n"
		s := testrpc.NewStructWithNullableOptionalMap()
		unmarshal(t, in, s)
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.True(t, s.NullableOptionalIntMap.Get().IsNull())
		assert.Equal(t, in, marshal(t, s))
	})
	t.Run("value json", func(t *testing.T) {
		in := `{"nullableOptionalIntMap":{"Hello":2}}` + "\n"
		s := testrpc.NewStructWithNullableOptionalMap()
		unmarshal(t, in, s)
		assert.True(t, s.IsValid())
		assert.True(t, s.IsInitialized())
		assert.False(t, s.NullableOptionalIntMap.Get().IsNull())
		assert.Equal(t, in, marshal(t, s))
	})
}

func TestOptionalIntArray(t *testing.T) {
	s := testrpc.NewStructWithOptionalIntArray()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsValid())
	assert.False(t, s.IsInitialized())

	s.MarkInitialized()
	assert.Equal(t, "{}\n", marshal(t, s))

	s.OptionalIntArray.Get().Push().Set(2)
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.Equal(t, `{"optionalIntArray":[2]}`+"\n", marshal(t, s))
}

func TestMandatoryIntArray(t *testing.T) {
	s := testrpc.NewStructWithMandatoryIntArray()
	assert.False(t, s.IsValid())
	assert.False(t, s.IsInitialized())

	s.MandatoryIntArray.Get().MarkInitialized()
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.Equal(t, `{"mandatoryIntArray":[]}`+"\n", marshal(t, s))

	s.MandatoryIntArray.Get().Push().Set(3)
	assert.True(t, s.IsValid())
	assert.Equal(t, `{"mandatoryIntArray":[3]}`+"\n", marshal(t, s))
}

func TestOptionalIntMap(t *testing.T) {
	s := testrpc.NewStructWithOptionalIntMap()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsValid())
	assert.False(t, s.IsInitialized())

	s.MarkInitialized()
	assert.True(t, s.IsEmpty())
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.Equal(t, "{}\n", marshal(t, s))

	s.OptionalIntMap.Get().Entry("Yay").Set(2)
	assert.True(t, s.IsValid())
	assert.Equal(t, `{"optionalIntMap":{"Yay":2}}`+"\n", marshal(t, s))
}

func TestMandatoryIntMap(t *testing.T) {
	s := testrpc.NewStructWithMandatoryIntMap()
	assert.False(t, s.IsValid())
	assert.False(t, s.IsInitialized())

	s.MandatoryIntMap.Get().MarkInitialized()
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.Equal(t, `{"mandatoryIntMap":{}}`+"\n", marshal(t, s))

	s.MandatoryIntMap.Get().Entry("Yay").Set(2)
	assert.True(t, s.IsValid())
	assert.Equal(t, `{"mandatoryIntMap":{"Yay":2}}`+"\n", marshal(t, s))
}

func TestMandatoryIntMap_FromEmptyObject(t *testing.T) {
	s := testrpc.NewStructWithMandatoryIntMap()
	unmarshal(t, "{}\n", s)
	assert.False(t, s.IsEmpty())
	assert.False(t, s.IsValid())
	assert.True(t, s.IsInitialized())

	iss := rpcbase.Validate(s)
	require.Len(t, iss, 1)
	assert.Equal(t, "/mandatoryIntMap", iss[0].Path)
	assert.Equal(t, rpcbase.CodeRequired, iss[0].Code)

	s.MandatoryIntMap.Get().Entry("Yay").Set(2)
	assert.True(t, s.IsValid())
	assert.True(t, s.IsInitialized())
	assert.Equal(t, `{"mandatoryIntMap":{"Yay":2}}`+"\n", marshal(t, s))
}

func TestMandatoryIntMap_FromWrongJSON(t *testing.T) {
	s := testrpc.NewStructWithMandatoryIntMap()
	unmarshal(t, "[]\n", s)
	assert.True(t, s.IsInitialized())
	assert.False(t, s.IsValid())
	iss := rpcbase.Validate(s)
	require.Len(t, iss, 1)
	assert.Equal(t, rpcbase.CodeInvalidType, iss[0].Code)

	s.MandatoryIntMap.Get().Entry("Yay").Set(2)
	assert.True(t, s.MandatoryIntMap.IsValid())
	assert.True(t, s.IsValid())
	assert.Empty(t, rpcbase.Validate(s))
	out := marshal(t, s)
	assert.Equal(t, `{"mandatoryIntMap":{"Yay":2}}`+"\n", out)

	back := testrpc.NewStructWithMandatoryIntMap()
	unmarshal(t, out, back)
	assert.True(t, back.IsValid())
}

func TestEnumStringers(t *testing.T) {
	assert.Equal(t, "INVALID_DATA", testrpc.RInvalidData.String())
	assert.Equal(t, []string{"DYNAMIC", "STATIC"}, testrpc.ImageTypeDef.Names())
	v, ok := testrpc.AppInterfaceUnregisteredReasonDef.Parse("MASTER_RESET")
	assert.True(t, ok)
	assert.Equal(t, testrpc.AiurMasterReset, v)
}
