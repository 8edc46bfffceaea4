package catalog

// nistProblems are the problem labels of the NIST PQC round-1 catalog.
// Index 0 is the "unknown" label.
var nistProblems = []string{
	"?",
	"Code",
	"PoSSo",
	"Lattice",
	"Lattice(NTRU)",
	"Multivariate",
	"Hash",
	"Hypercomplex",
	"Code(Rank)",
	"Isogeny",
}

// nistSchemes lists the round-1 proposals in display order.
var nistSchemes = []Scheme{
	{Name: "AKCN", ID: 0, Problem: 0, Signature: false},
	{Name: "BIG QUAKE", ID: 1, Problem: 1, Signature: false},
	{Name: "BIKE", ID: 2, Problem: 1, Signature: false},
	{Name: "CFPKM", ID: 3, Problem: 2, Signature: false},
	{Name: "Classic McEliece", ID: 4, Problem: 1, Signature: false},
	{Name: "CNKE", ID: 5, Problem: 0, Signature: false},
	{Name: "Compact-LWE", ID: 6, Problem: 3, Signature: false},
	{Name: "CRYSTALS-Dilithium", ID: 7, Problem: 3, Signature: true},
	{Name: "CRYSTALS-Kyber", ID: 8, Problem: 3, Signature: false},
	{Name: "DAGS", ID: 9, Problem: 1, Signature: false},
	{Name: "Ding Key Exchange", ID: 10, Problem: 3, Signature: false},
	{Name: "DME-KEM", ID: 11, Problem: 0, Signature: false},
	{Name: "DRS", ID: 12, Problem: 0, Signature: true},
	{Name: "DualModeMS", ID: 13, Problem: 0, Signature: true},
	{Name: "EDON-K", ID: 14, Problem: 0, Signature: false},
	{Name: "EMBLEM", ID: 15, Problem: 3, Signature: false},
	{Name: "R.EMBLEM", ID: 16, Problem: 3, Signature: false},
	{Name: "Falcon", ID: 17, Problem: 4, Signature: true},
	{Name: "FrodoKEM", ID: 18, Problem: 3, Signature: false},
	{Name: "GeMSS", ID: 19, Problem: 5, Signature: true},
	{Name: "Giophantus", ID: 20, Problem: 0, Signature: false},
	{Name: "Gravity-SPHINCS", ID: 21, Problem: 6, Signature: true},
	{Name: "GUESS AGAIN", ID: 22, Problem: 0, Signature: false},
	{Name: "Gui", ID: 23, Problem: 5, Signature: true},
	{Name: "HILA5", ID: 24, Problem: 3, Signature: false},
	{Name: "HiMQ-3", ID: 25, Problem: 5, Signature: true},
	{Name: "HK17", ID: 26, Problem: 7, Signature: false},
	{Name: "HQC", ID: 27, Problem: 1, Signature: false},
	{Name: "KINDI", ID: 28, Problem: 0, Signature: false},
	{Name: "LAC", ID: 29, Problem: 0, Signature: false},
	{Name: "LAKE", ID: 30, Problem: 8, Signature: false},
	{Name: "LEDAkem", ID: 31, Problem: 0, Signature: false},
	{Name: "LEDApkc", ID: 32, Problem: 0, Signature: false},
	{Name: "Lepton", ID: 33, Problem: 0, Signature: false},
	{Name: "LIMA", ID: 34, Problem: 0, Signature: false},
	{Name: "Lizard", ID: 35, Problem: 0, Signature: false},
	{Name: "LOCKER", ID: 36, Problem: 8, Signature: false},
	{Name: "LOTUS", ID: 37, Problem: 0, Signature: false},
	{Name: "LUOV", ID: 38, Problem: 5, Signature: true},
	{Name: "McNie", ID: 39, Problem: 8, Signature: false},
	{Name: "Mersenne-756839", ID: 40, Problem: 0, Signature: false},
	{Name: "MQDSS", ID: 41, Problem: 5, Signature: true},
	{Name: "NewHope", ID: 42, Problem: 3, Signature: false},
	{Name: "NTRUEncrypt", ID: 43, Problem: 4, Signature: false},
	{Name: "NTRU-HRSS-KEM", ID: 44, Problem: 4, Signature: false},
	{Name: "NTRU Prime", ID: 45, Problem: 4, Signature: false},
	{Name: "NTS-KEM", ID: 46, Problem: 0, Signature: false},
	{Name: "Odd Manhattan", ID: 47, Problem: 3, Signature: false},
	{Name: "OKCN", ID: 48, Problem: 0, Signature: false},
	{Name: "Ouroboros-R", ID: 49, Problem: 8, Signature: false},
	{Name: "Picnic", ID: 50, Problem: 0, Signature: true},
	{Name: "pqNTRUSign", ID: 51, Problem: 4, Signature: true},
	{Name: "pqsigRM", ID: 52, Problem: 0, Signature: true},
	{Name: "QC-MDPC KEM", ID: 53, Problem: 0, Signature: false},
	{Name: "qTESLA", ID: 54, Problem: 3, Signature: true},
	{Name: "RaCoSS", ID: 55, Problem: 0, Signature: true},
	{Name: "Rainbow", ID: 56, Problem: 5, Signature: true},
	{Name: "Ramstake", ID: 57, Problem: 0, Signature: false},
	{Name: "RankSign", ID: 58, Problem: 8, Signature: true},
	{Name: "RLCE-KEM", ID: 59, Problem: 0, Signature: false},
	{Name: "Round2", ID: 60, Problem: 3, Signature: false},
	{Name: "RQC", ID: 61, Problem: 8, Signature: false},
	{Name: "RVB", ID: 62, Problem: 0, Signature: false},
	{Name: "SABER", ID: 63, Problem: 0, Signature: false},
	{Name: "SIKE", ID: 64, Problem: 9, Signature: false},
	{Name: "SPHINCS+", ID: 65, Problem: 6, Signature: true},
	{Name: "SRTPI", ID: 66, Problem: 0, Signature: false},
	{Name: "ThreeBears", ID: 67, Problem: 3, Signature: false},
	{Name: "Titanium", ID: 68, Problem: 0, Signature: false},
	{Name: "TPSig", ID: 69, Problem: 0, Signature: true},
	{Name: "WalnutDSA", ID: 70, Problem: 0, Signature: true},
}

// Default returns the embedded NIST PQC round-1 catalog.
// It panics if the embedded data is inconsistent, which can only happen
// through a programming error caught by the package tests.
func Default() *Catalog {
	c, err := New(nistProblems, nistSchemes)
	if err != nil {
		panic("catalog: embedded NIST data is invalid: " + err.Error())
	}
	return c
}
