package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSerialize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Header+"\naccounts:\n", Serialize(AccountSet{}))
	})

	t.Run("SortedWithOmittedFields", func(t *testing.T) {
		set := AccountSet{
			"zed":   {PrivateKey: "k3"},
			"alice": {Address: "0xAA", PrivateKey: "k1"},
			"bob":   {Address: " 0xBB "},
		}
		want := Header + "\n" +
			"accounts:\n" +
			"  alice:\n" +
			"    address: \"0xAA\"\n" +
			"    private_key: k1\n" +
			"  bob:\n" +
			"    address: \"0xBB\"\n" +
			"  zed:\n" +
			"    private_key: k3\n"
		assert.Equal(t, want, Serialize(set))
	})

	t.Run("EmptyAccountKeepsHeader", func(t *testing.T) {
		out := Serialize(AccountSet{"ghost": {}})
		assert.Equal(t, Header+"\naccounts:\n  ghost:\n", out)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := AccountSet{}
		b := AccountSet{}
		names := []string{"c", "a", "b", "e", "d"}
		for i, n := range names {
			a[n] = Account{Address: "0x" + n}
			b[names[len(names)-1-i]] = Account{Address: "0x" + names[len(names)-1-i]}
		}
		assert.Equal(t, Serialize(a), Serialize(b))
	})
}

func TestRoundTrip(t *testing.T) {
	sets := []AccountSet{
		{},
		{"alice": {Address: "0xAA", PrivateKey: "ed25519-priv-0x01"}},
		{
			"a":       {Address: "0x1"},
			"b":       {PrivateKey: "k2"},
			"c.d-e_f": {Address: "0xdeadbeef", PrivateKey: "ed25519-priv-0xbeef"},
		},
	}

	for _, set := range sets {
		out := Serialize(set)
		assert.Equal(t, set, Parse(out))
		assert.Equal(t, out, Serialize(Parse(out)))
	}
}

// The canonical form is also plain YAML, so standard tooling reads it the same way.
func TestSerializeIsValidYAML(t *testing.T) {
	set := AccountSet{
		"alice": {Address: "0xAA", PrivateKey: "ed25519-priv-0x01"},
		"bob":   {Address: "0xBB"},
	}

	var decoded struct {
		Accounts map[string]Account `yaml:"accounts"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(Serialize(set)), &decoded))

	assert.Len(t, decoded.Accounts, 2)
	assert.Equal(t, set["alice"], decoded.Accounts["alice"])
	assert.Equal(t, "0xBB", decoded.Accounts["bob"].Address)
}
