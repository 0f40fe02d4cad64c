// Command kemcli generates keypairs, encapsulates and decapsulates
// session keys, and cross-checks public keys against the lattigo ring
// reference. Keys and capsules are stored as JSON with the canonical
// 5-trits-per-byte packing, base64 encoded.
package main

import (
	crand "crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ternary-kem/ntru"
	"ternary-kem/poly"
	"ternary-kem/prng"
	"ternary-kem/trits"
)

const keyDir = "kem_keys"

type publicKeyFile struct {
	Pk string `json:"pk"`
}

type privateKeyFile struct {
	Sk   string `json:"sk"`
	Seed string `json:"seed"`
}

type capsuleFile struct {
	Y string `json:"y"`
}

type sessionKeyFile struct {
	K string `json:"k"`
}

func usage() {
	fmt.Println(`usage: kemcli <gen|encap|decap|check> [options]

Subcommands:
  gen      Generate a keypair and write ./kem_keys/{public,private}.json
           Flags:
             -seed  <string>  deterministic PRNG seed (default: random)
             -nonce <string>  keygen nonce label (default: "kemcli")

  encap    Encapsulate a fresh session key to a public key
           Flags:
             -pk   <file>  public key file (default: ./kem_keys/public.json)
             -out  <file>  capsule output (default: ./kem_keys/capsule.json)
             -key  <file>  session key output (default: ./kem_keys/session.json)
             -seed <string> deterministic PRNG seed (default: random)

  decap    Decapsulate a capsule with the private key
           Flags:
             -sk      <file>  private key file (default: ./kem_keys/private.json)
             -capsule <file>  capsule file (default: ./kem_keys/capsule.json)
             -key     <file>  expected session key to compare against (optional)

  check    Re-validate a stored public key and cross-check the hand-rolled
           NTT against the lattigo ring on its polynomial
           Flags:
             -pk <file>  public key file (default: ./kem_keys/public.json)`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "encap":
		runEncap(os.Args[2:])
	case "decap":
		runDecap(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		usage()
	}
}

func seedOrRandom(seed string) []byte {
	if seed != "" {
		return []byte(seed)
	}
	b := make([]byte, 32)
	if _, err := crand.Read(b); err != nil {
		log.Fatalf("random seed: %v", err)
	}
	return b
}

func nonceFromLabel(label string) trits.Trits {
	return prng.KeyFromSeed([]byte("nonce:" + label)).Take(81)
}

func writeJSON(path string, v any) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
}

func readJSON(path string, v any) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
}

func packTrits(t trits.Trits) string {
	return base64.StdEncoding.EncodeToString(trits.Encode(t))
}

func unpackTrits(s string, n int) trits.Trits {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		log.Fatalf("base64: %v", err)
	}
	t, err := trits.Decode(raw, n)
	if err != nil {
		log.Fatalf("unpack trits: %v", err)
	}
	return t
}

func loadPublicKey(path string) *ntru.PublicKey {
	var f publicKeyFile
	readJSON(path, &f)
	pk, err := ntru.PublicKeyFromTrits(unpackTrits(f.Pk, ntru.PKSize))
	if err != nil {
		log.Fatalf("public key %s: %v", path, err)
	}
	return pk
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	seed := fs.String("seed", "", "deterministic PRNG seed")
	nonce := fs.String("nonce", "kemcli", "keygen nonce label")
	fs.Parse(args)

	seedBytes := seedOrRandom(*seed)
	p := prng.New(prng.KeyFromSeed(seedBytes))
	sk, pk, err := ntru.Gen(p, nonceFromLabel(*nonce))
	if err != nil {
		log.Fatalf("gen: %v", err)
	}

	writeJSON(filepath.Join(keyDir, "public.json"), publicKeyFile{Pk: packTrits(pk.Trits())})
	writeJSON(filepath.Join(keyDir, "private.json"), privateKeyFile{
		Sk:   packTrits(sk.Trits()),
		Seed: base64.StdEncoding.EncodeToString(seedBytes),
	})
	fmt.Printf("pkid: %s\n", pk.Id())
	fmt.Printf("wrote %s and %s\n",
		filepath.Join(keyDir, "public.json"), filepath.Join(keyDir, "private.json"))
}

func runEncap(args []string) {
	fs := flag.NewFlagSet("encap", flag.ExitOnError)
	pkPath := fs.String("pk", filepath.Join(keyDir, "public.json"), "public key file")
	outPath := fs.String("out", filepath.Join(keyDir, "capsule.json"), "capsule output")
	keyPath := fs.String("key", filepath.Join(keyDir, "session.json"), "session key output")
	seed := fs.String("seed", "", "deterministic PRNG seed")
	fs.Parse(args)

	pk := loadPublicKey(*pkPath)
	p := prng.New(prng.KeyFromSeed(seedOrRandom(*seed)))

	k := trits.New(ntru.KeySize)
	p.Gens([]trits.Trits{nonceFromLabel("session")}, k)
	y := trits.New(ntru.EKeySize)
	pk.Encr(p, nonceFromLabel("encap"), k, y)

	writeJSON(*outPath, capsuleFile{Y: packTrits(y)})
	writeJSON(*keyPath, sessionKeyFile{K: packTrits(k)})
	fmt.Printf("encapsulated %d-trit session key to pkid %s\n", ntru.KeySize, pk.Id())
}

func runDecap(args []string) {
	fs := flag.NewFlagSet("decap", flag.ExitOnError)
	skPath := fs.String("sk", filepath.Join(keyDir, "private.json"), "private key file")
	capPath := fs.String("capsule", filepath.Join(keyDir, "capsule.json"), "capsule file")
	keyPath := fs.String("key", "", "expected session key file")
	fs.Parse(args)

	var skf privateKeyFile
	readJSON(*skPath, &skf)
	sk, err := ntru.PrivateKeyFromTrits(unpackTrits(skf.Sk, ntru.SKSize))
	if err != nil {
		log.Fatalf("private key: %v", err)
	}

	var capf capsuleFile
	readJSON(*capPath, &capf)
	y := unpackTrits(capf.Y, ntru.EKeySize)

	k := trits.New(ntru.KeySize)
	if err := sk.Decr(y, k); err != nil {
		log.Fatalf("decap: %v", err)
	}
	fmt.Println("decapsulation ok")

	if *keyPath != "" {
		var kf sessionKeyFile
		readJSON(*keyPath, &kf)
		if !k.Equal(unpackTrits(kf.K, ntru.KeySize)) {
			log.Fatal("recovered key differs from stored session key")
		}
		fmt.Println("session key matches")
	}
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	pkPath := fs.String("pk", filepath.Join(keyDir, "public.json"), "public key file")
	fs.Parse(args)

	pk := loadPublicKey(*pkPath)
	fmt.Printf("public key parses and is invertible, pkid %s\n", pk.Id())

	var a, b poly.Poly
	if !a.FromTrits(pk.Trits()) {
		log.Fatal("re-parse failed")
	}
	b = a
	want, err := poly.ConvRef(&a, &b)
	if err != nil {
		log.Fatalf("lattigo reference: %v", err)
	}
	a.NTT()
	a.Conv(&a)
	a.INTT()
	if a != *want {
		log.Fatal("hand-rolled NTT square disagrees with lattigo")
	}
	fmt.Println("NTT cross-check against lattigo ok")
}
