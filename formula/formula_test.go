package formula

import (
	"testing"

	"github.com/npillmayer/markdoc/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConvertSimpleFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.formula")
	defer teardown()
	//
	bridge := NewBridge()
	node, err := bridge.Convert("x^2")
	assert.NoError(t, err)
	assert.NotNil(t, node)
}

func TestConvertEmptyFormulaIsNoOpFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.formula")
	defer teardown()
	//
	bridge := NewBridge()
	_, err := bridge.Convert("   ")
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestConvertMalformedFormulaFailsRecoverably(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.formula")
	defer teardown()
	//
	bridge := NewBridge()
	node, err := bridge.Convert(`{1`)
	assert.Error(t, err, "an unbalanced brace must fail, not panic")
	assert.Nil(t, node)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestBridgeReplacements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.formula")
	defer teardown()
	//
	bridge := NewBridge(`\undefinedsymbol`, "x")
	node, err := bridge.Convert(`\undefinedsymbol`)
	assert.NoError(t, err, "replacement should have made the formula parseable")
	assert.NotNil(t, node)
}
