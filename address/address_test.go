package address

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/calebcase/p2pkh/hash160"
)

func mustHash(t testing.TB, s string) hash160.Hash160 {
	t.Helper()

	h, err := hash160.FromHex(s)
	require.NoError(t, err)

	return h
}

func privKey(n uint64) *btcec.PrivateKey {
	b := make([]byte, 32)
	binary.BigEndian.PutUint64(b[24:], n)

	priv, _ := btcec.PrivKeyFromBytes(b)

	return priv
}

func TestBase58Check(t *testing.T) {
	a := New(Mainnet, mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070"))

	require.Equal(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM", a.ToBase58Check())
	require.Equal(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM", a.String())

	got, err := FromBase58Check("132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	require.NoError(t, err)
	require.Equal(t, a, got)
	require.True(t, a == got)
	require.Equal(t, Mainnet, got.Network())
}

func TestChecksum(t *testing.T) {
	a := New(Testnet, mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070"))

	raw := base58.Decode(a.ToBase58Check())
	require.Len(t, raw, PayloadSize+4)
	require.Equal(t, byte(111), raw[0])
	require.Equal(t, a.Bytes(), raw[1:PayloadSize])
	require.Equal(t, chainhash.DoubleHashB(raw[:PayloadSize])[:4], raw[PayloadSize:])
}

func TestFromKey(t *testing.T) {
	pub := privKey(1).PubKey()

	a := FromKey(Mainnet, pub)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", a.Hash().String())
	require.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", a.String())

	u := FromUncompressedKey(Mainnet, pub)
	require.Equal(t, "91b24bf9f5288532960ac687abb035127b1d28a5", u.Hash().String())
	require.Equal(t, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm", u.String())

	require.Equal(t, a, FromKeyBytes(Mainnet, pub.SerializeCompressed()))
	require.NotEqual(t, a, FromKey(Testnet, pub))
}

func TestFromKeyDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64Range(1, ^uint64(0)).Draw(t, "key")
		net := rapid.SampledFrom(Networks).Draw(t, "network")

		pub := privKey(n).PubKey()

		require.Equal(t, FromKey(net, pub), FromKey(net, pub))
		require.Equal(t, FromUncompressedKey(net, pub), FromUncompressedKey(net, pub))
	})
}

func TestRoundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), hash160.Size, hash160.Size).Draw(t, "hash")
		net := rapid.SampledFrom(Networks).Draw(t, "network")

		a, err := FromBytes(raw, net)
		require.NoError(t, err)

		got, err := FromBase58Check(a.ToBase58Check())
		require.NoError(t, err)
		require.Equal(t, a, got)
	})
}

func TestTestnetPrefix(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := FromKey(Testnet, privKey(uint64(i+1)).PubKey())
		text := a.ToBase58Check()

		require.Contains(t, []byte{'m', 'n'}, text[0], text)
	}
}

func TestDecodeErrors(t *testing.T) {
	h := mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070")

	type TC struct {
		name  string
		text  string
		check func(t *testing.T, err error)
		Mark  error
	}

	tcs := []TC{
		{
			name: "checksum",
			text: "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiN",
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, base58.ErrChecksum)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "alphabet",
			text: "0OIl",
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, base58.ErrInvalidFormat)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "empty",
			text: "",
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, base58.ErrInvalidFormat)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "short payload",
			text: base58.CheckEncode(h[:19], 0),
			check: func(t *testing.T, err error) {
				var lerr *InvalidLengthError
				require.ErrorAs(t, err, &lerr)
				require.Equal(t, 20, lerr.Length)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "long payload",
			text: base58.CheckEncode(append(h[:], 0), 111),
			check: func(t *testing.T, err error) {
				var lerr *InvalidLengthError
				require.ErrorAs(t, err, &lerr)
				require.Equal(t, 22, lerr.Length)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "empty payload",
			text: Base58Check{}.EncodeCheck(nil),
			check: func(t *testing.T, err error) {
				var lerr *InvalidLengthError
				require.ErrorAs(t, err, &lerr)
				require.Equal(t, 0, lerr.Length)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "bare checksum mismatch",
			text: base58.Encode([]byte{0, 0, 0, 0}),
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, base58.ErrChecksum)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "p2sh version",
			text: base58.CheckEncode(h[:], 5),
			check: func(t *testing.T, err error) {
				var verr *InvalidVersionError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, byte(5), verr.Version)
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "regtest-like version",
			text: base58.CheckEncode(h[:], 0xff),
			check: func(t *testing.T, err error) {
				var verr *InvalidVersionError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, byte(0xff), verr.Version)
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a, err := FromBase58Check(tc.text)
			require.Error(t, err, tc.Mark)
			require.Equal(t, Address{}, a)

			t.Logf("Error: %s\n", spew.Sdump(err))

			tc.check(t, err)
		})
	}
}

func TestBase58CheckEmptyPayload(t *testing.T) {
	text := Base58Check{}.EncodeCheck(nil)

	payload, err := Base58Check{}.DecodeCheck(text)
	require.NoError(t, err)
	require.Empty(t, payload)

	payload, err = Base58Check{}.DecodeCheck(Base58Check{}.EncodeCheck([]byte{7}))
	require.NoError(t, err)
	require.Equal(t, []byte{7}, payload)
}

type staticCodec struct {
	payload []byte
	err     error
}

func (c staticCodec) EncodeCheck(payload []byte) string {
	return hex.EncodeToString(payload)
}

func (c staticCodec) DecodeCheck(text string) ([]byte, error) {
	return c.payload, c.err
}

func TestCustomCodec(t *testing.T) {
	h := mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070")

	t.Run("encode", func(t *testing.T) {
		text := NewEncoder(staticCodec{}).Encode(New(Testnet, h))
		require.Equal(t, "6f162c5ea71c0b23f5b9022ef047c4a86470a5b070", text)
	})

	t.Run("error propagates", func(t *testing.T) {
		sentinel := errors.New("sentinel")

		_, err := NewDecoder(staticCodec{err: sentinel}).Decode("x")
		require.Equal(t, sentinel, err)
	})

	t.Run("decode", func(t *testing.T) {
		payload := append([]byte{111}, h[:]...)

		a, err := NewDecoder(staticCodec{payload: payload}).Decode("x")
		require.NoError(t, err)
		require.Equal(t, New(Testnet, h), a)
	})
}

func TestFromBytes(t *testing.T) {
	_, err := FromBytes(make([]byte, 32), Mainnet)
	require.Error(t, err)
	require.True(t, Error.Has(err))
	require.True(t, hash160.Error.Has(err))

	raw := mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070").Bytes()

	a, err := FromBytes(raw, Mainnet)
	require.NoError(t, err)
	require.Equal(t, 20, a.Len())
	require.Equal(t, byte(0x16), a.At(0))
	require.Equal(t, raw, a.Bytes())

	raw[0] = 0
	require.Equal(t, byte(0x16), a.At(0))
}

func TestScriptPubKey(t *testing.T) {
	a := New(Mainnet, mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070"))

	s := a.ScriptPubKey()
	require.Equal(t, "76a914162c5ea71c0b23f5b9022ef047c4a86470a5b07088ac", hex.EncodeToString(s))

	got, err := FromScript(Mainnet, s)
	require.NoError(t, err)
	require.Equal(t, a, got)

	_, err = FromScript(Mainnet, s[:24])
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestNetwork(t *testing.T) {
	require.Equal(t, byte(0), Mainnet.PubKeyHashAddrID())
	require.Equal(t, byte(111), Testnet.PubKeyHashAddrID())

	for _, n := range Networks {
		got, err := ParseNetwork(n.String())
		require.NoError(t, err)
		require.Equal(t, n, got)

		v, ok := networkFromVersion(n.PubKeyHashAddrID())
		require.True(t, ok)
		require.Equal(t, n, v)
	}

	_, err := ParseNetwork("regtest")
	require.Error(t, err)

	require.Panics(t, func() {
		New(Network(7), hash160.Hash160{}).ToBase58Check()
	})
}

func TestText(t *testing.T) {
	type wrapper struct {
		Address Address `json:"address"`
	}

	a := New(Mainnet, mustHash(t, "162c5ea71c0b23f5b9022ef047c4a86470a5b070"))

	data, err := json.Marshal(wrapper{Address: a})
	require.NoError(t, err)
	require.JSONEq(t, `{"address":"132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM"}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, a, got.Address)

	require.Error(t, json.Unmarshal([]byte(`{"address":"nope"}`), &got))
}

func BenchmarkFromKey(b *testing.B) {
	pub := privKey(1).PubKey()

	for n := 0; n < b.N; n++ {
		a := FromKey(Mainnet, pub)
		if a.Network() != Mainnet {
			b.Fatalf("unexpected network: %s", a.Network())
		}
	}
}

func BenchmarkFromUncompressedKey(b *testing.B) {
	pub := privKey(1).PubKey()

	for n := 0; n < b.N; n++ {
		a := FromUncompressedKey(Mainnet, pub)
		if a.Network() != Mainnet {
			b.Fatalf("unexpected network: %s", a.Network())
		}
	}
}

func BenchmarkFromKeySequential(b *testing.B) {
	for n := 0; n < b.N; n++ {
		a := FromKey(Mainnet, privKey(uint64(n+1)).PubKey())
		if len(a.ToBase58Check()) == 0 {
			b.Fatal("empty address")
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	a := New(Mainnet, mustHash(b, "162c5ea71c0b23f5b9022ef047c4a86470a5b070"))
	enc := NewEncoder(Base58Check{})

	for n := 0; n < b.N; n++ {
		enc.Encode(a)
	}
}

func BenchmarkDecode(b *testing.B) {
	dec := NewDecoder(Base58Check{})

	for n := 0; n < b.N; n++ {
		_, err := dec.Decode("132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
