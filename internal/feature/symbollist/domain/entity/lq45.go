package entity

// lq45 is the seeded catalog: the LQ45 constituents in Yahoo ticker form
// (IDX code + ".JK" suffix). Default entries form the comparison set used
// when no tickers are selected.
var lq45 = []struct {
	code      string
	name      string
	isDefault bool
}{
	{"AADI.JK", "Adaro Andalan Indonesia", false},
	{"ACES.JK", "Aspirasi Hidup Indonesia", false},
	{"ADMR.JK", "Adaro Minerals Indonesia", false},
	{"ADRO.JK", "Alamtri Resources Indonesia", true},
	{"AKRA.JK", "AKR Corporindo", false},
	{"AMMN.JK", "Amman Mineral Internasional", false},
	{"AMRT.JK", "Sumber Alfaria Trijaya", false},
	{"ANTM.JK", "Aneka Tambang", true},
	{"ARTO.JK", "Bank Jago", false},
	{"ASII.JK", "Astra International", true},
	{"BBCA.JK", "Bank Central Asia", true},
	{"BBNI.JK", "Bank Negara Indonesia", false},
	{"BBRI.JK", "Bank Rakyat Indonesia", true},
	{"BBTN.JK", "Bank Tabungan Negara", false},
	{"BMRI.JK", "Bank Mandiri", true},
	{"BRIS.JK", "Bank Syariah Indonesia", false},
	{"BRPT.JK", "Barito Pacific", false},
	{"CPIN.JK", "Charoen Pokphand Indonesia", false},
	{"CTRA.JK", "Ciputra Development", false},
	{"EXCL.JK", "XL Axiata", false},
	{"GOTO.JK", "GoTo Gojek Tokopedia", false},
	{"ICBP.JK", "Indofood CBP Sukses Makmur", false},
	{"INCO.JK", "Vale Indonesia", false},
	{"INDF.JK", "Indofood Sukses Makmur", false},
	{"INKP.JK", "Indah Kiat Pulp & Paper", false},
	{"ISAT.JK", "Indosat", false},
	{"ITMG.JK", "Indo Tambangraya Megah", false},
	{"JPFA.JK", "Japfa Comfeed Indonesia", false},
	{"JSMR.JK", "Jasa Marga", false},
	{"KLBF.JK", "Kalbe Farma", false},
	{"MAPA.JK", "MAP Aktif Adiperkasa", false},
	{"MAPI.JK", "Mitra Adiperkasa", false},
	{"MBMA.JK", "Merdeka Battery Materials", false},
	{"MDKA.JK", "Merdeka Copper Gold", false},
	{"MEDC.JK", "Medco Energi Internasional", false},
	{"PGAS.JK", "Perusahaan Gas Negara", false},
	{"PGEO.JK", "Pertamina Geothermal Energy", false},
	{"PTBA.JK", "Bukit Asam", false},
	{"SCMA.JK", "Surya Citra Media", false},
	{"SMGR.JK", "Semen Indonesia", false},
	{"SMRA.JK", "Summarecon Agung", false},
	{"TLKM.JK", "Telkom Indonesia", true},
	{"TOWR.JK", "Sarana Menara Nusantara", false},
	{"UNTR.JK", "United Tractors", false},
	{"UNVR.JK", "Unilever Indonesia", true},
}

// LQ45 returns the seeded catalog entries in display order.
func LQ45() []Symbol {
	out := make([]Symbol, 0, len(lq45))
	for i, s := range lq45 {
		out = append(out, Symbol{
			Code:      s.code,
			Name:      s.name,
			Market:    "IDX",
			IsActive:  true,
			IsDefault: s.isDefault,
			SortKey:   i,
		})
	}
	return out
}

// DefaultCodes returns the codes of the default comparison set in display order.
func DefaultCodes() []string {
	var out []string
	for _, s := range lq45 {
		if s.isDefault {
			out = append(out, s.code)
		}
	}
	return out
}
