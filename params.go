package eccp

// CurveParams describes a named set of domain parameters as distributed:
// every numeric field is a hex string. P, A, B define the curve; Gx, Gy
// the base point; N the (prime) order of the base point with cofactor H.
// D, Qx, Qy are the published test key pair for the set and carry no
// security.
type CurveParams struct {
	Name    string
	BitSize int
	P       string
	A       string
	B       string
	Gx      string
	Gy      string
	N       string
	H       int
	D       string
	Qx      string
	Qy      string
}

// Domain bundles the objects built from a parameter set: the coordinate
// field, the scalar field over the base point order, the curve, and the
// base point.
type Domain struct {
	Field       *Field
	ScalarField *Field
	Curve       *Curve
	G           *Point
}

// Domain instantiates the parameter set.
func (cp *CurveParams) Domain() (*Domain, error) {
	f, err := NewField(cp.P)
	if err != nil {
		return nil, err
	}
	sf, err := NewField(cp.N)
	if err != nil {
		return nil, err
	}
	a, err := f.FromHex(cp.A)
	if err != nil {
		return nil, err
	}
	b, err := f.FromHex(cp.B)
	if err != nil {
		return nil, err
	}
	curve, err := NewCurve(f, a, b)
	if err != nil {
		return nil, err
	}
	gx, err := f.FromHex(cp.Gx)
	if err != nil {
		return nil, err
	}
	gy, err := f.FromHex(cp.Gy)
	if err != nil {
		return nil, err
	}
	g, err := curve.NewPoint(gx, gy)
	if err != nil {
		return nil, err
	}
	return &Domain{Field: f, ScalarField: sf, Curve: curve, G: g}, nil
}

// CurveByName looks up a parameter set by name, returning nil when the
// name is unknown.
func CurveByName(name string) *CurveParams {
	for _, cp := range Curves {
		if cp.Name == name {
			return cp
		}
	}
	return nil
}

// Curves lists the parameter sets shipped for test use: challenge-style
// prime-field curves at bit widths 79 through 359, plus secp256k1 for
// cross-checking against independent implementations.
var Curves = []*CurveParams{
	{
		Name:    "ECCp-79",
		BitSize: 79,
		P:       "62CE5177412ACA899CF5",
		A:       "39C95E6DDDB1BC45733C",
		B:       "1F16D880E89D5A1C0ED1",
		Gx:      "315D4B201C208475057D",
		Gy:      "035F3DF5AB370252450A",
		N:       "62CE5177407B7258DC31",
		H:       1,
		D:       "02CE5177407B7258DC31",
		Qx:      "1453B8DC97F50B84F47A",
		Qy:      "47A8C94CF19FF3141F35",
	},
	{
		Name:    "ECCp-89",
		BitSize: 89,
		P:       "17F2C9E2C933BB9868F1CC9",
		A:       "116401A3CF5EC68E629CD1D",
		B:       "159A911DF3134070EAC4819",
		Gx:      "08A9E45EFF552C2F8073E3C",
		Gy:      "07E6B9613C883F84AEBDA7F",
		N:       "0000119318D8256567D046B",
		H:       89304,
		D:       "00000A606ECF615B0B8DDEF",
		Qx:      "15C79EC048492656DCAD54C",
		Qy:      "0E64C2B5FB05DF313570E20",
	},
	{
		Name:    "ECCp-97",
		BitSize: 97,
		P:       "15DF7AEED951AC8F53DC58A8B",
		A:       "0916755F5DE6B9C169AEC621A",
		B:       "024C63B3D5D75506C32016A01",
		Gx:      "0A902E27586CAD4295F41EA68",
		Gy:      "0AF3EB9053C9AE48D1E56F75F",
		N:       "0000680294A70CEBDF60E4673",
		H:       13782,
		D:       "0000290CB12DF97A96084479A",
		Qx:      "08547A437439F5779F676289A",
		Qy:      "0D193C5B375D39FF1F421489C",
	},
	{
		Name:    "ECCp-109",
		BitSize: 109,
		P:       "1FE688FE40C8AFB3FBDB078B03AB",
		A:       "1B2ECB63E0D40929F71417AF0A5D",
		B:       "0C4FF5476A9144E9DF86A929A7E3",
		Gx:      "0B2E9A55967BD0328DF6DAF61B75",
		Gy:      "1C2F885325F403E9B679BE56E77E",
		N:       "01C5B24703995F129CCA24C7D5DB",
		H:       18,
		D:       "0041D3492978DF5596ECC502F447",
		Qx:      "110F8A43CA1900AF57777FEEF7C5",
		Qy:      "0037A2E283E5B1048A8FA48E6D40",
	},
	{
		Name:    "ECCp-131",
		BitSize: 131,
		P:       "73ACC4D64FF113BDEA2AA881C5B6016B9",
		A:       "3B4ADA726559DD742D957A5E9AB164849",
		B:       "22672BBA962E97A4844664B7182DE0069",
		Gx:      "349C673CC0516583D3760A4E2F169CC10",
		Gy:      "257EF75CC042B167F2F5E73C2705B3DCC",
		N:       "0016D96F92A12C75AD5DE413D6C4DFC93",
		H:       1296,
		D:       "0005144898C89199D5B3F46AC7C159656",
		Qx:      "1A30F83695B337C495FBB4EF177CC20A6",
		Qy:      "412869B1954EC5CDE0F7EB190D65A6FCD",
	},
	{
		Name:    "ECCp-163",
		BitSize: 163,
		P:       "7C0182997D4E165DD40488B6386B5F939B8A96C89",
		A:       "68ECD7D7F9644CB0A74BF42FA26307C35749F01B9",
		B:       "37AA50E5C25695D07A6C0A93665ACF51A7B736CF6",
		Gx:      "348417C29E8AE6997819905E16C60DC5CDEE32C2D",
		Gy:      "081401789DFCCB92ACBBD42FD225ECDD379351638",
		N:       "0003DE1D0648C60DAC1893DCAF1FC322947D1EEAB",
		H:       8208,
		D:       "00027994A628C52AA409988ADE496486DC2356A5A",
		Qx:      "6C844CFCDD8D5E355DFB75EFC15FC254E8A5E2781",
		Qy:      "12D8549C103AA882FA59FFE113310038AE700B035",
	},
	{
		Name:    "ECCp-191",
		BitSize: 191,
		P:       "581061BA532314CC25192AE3DCA73E265E202B8C288A9A13",
		A:       "349214AAA4181C55BC5118A319591CC52686A93EF8417934",
		B:       "4DC1BF84D21B40C14BD2A6A62D75202F49115EBE2FBD3961",
		Gx:      "17FFBD24E15B3998B1F1BEBC41653A27A041479E856E30ED",
		Gy:      "33D74E9813590BC682A99A6CB235DD709B643E97A875E3A0",
		N:       "00DD05FA4C1BF3A7A602C1ACE54B73EBDE3FDF851E08B55B",
		H:       102,
		D:       "00B0D5BE5DD028980378BE08195AF250E892B850144A049C",
		Qx:      "25D9131920F679CDABAED78C32C6A400F14A79F6CC8C8F97",
		Qy:      "0315235377B5B94B6CF5D8D394A14EDB87D9744124B815E3",
	},
	{
		Name:    "ECCp-239",
		BitSize: 239,
		P:       "5BE1D72653C2ECAF56BB02CB0DB043D02CFDB31D0A458BF9BF6326FB3461",
		A:       "5B7736A47A304B9AEFAF3A72B75AF3DBCC953F4DD9EB8E8C758ABB7EA294",
		B:       "1F481763EC71544AE89C777978A31E94CE6736D5EFE5D27D64DEDE2E2C58",
		Gx:      "29E921C8AE43ADEC2D701E5920D27E65875755E91FA2AFD8F157A474EA23",
		Gy:      "3B24024BE62E856DABDAFAA5EB06FDA653CDE29F0534DF3345CF7B4BA3A7",
		N:       "000EF6875A45A93050AA75BE031A54B9739CE55CEE3B20636CC5268CCB09",
		H:       1572,
		D:       "000C06020045C0CE7A829BDCF8BB2E5AABE5545BF23BE03755040700EF91",
		Qx:      "3CA925FD184E707FCA18E9D5A7671EFD3220712AECBE93EFFDEAE7017E49",
		Qy:      "5546FB79038702587F2C6DBB5343FF0DB1E558D6E4AC28F23AA978702B5B",
	},
	{
		Name:    "ECCp-359",
		BitSize: 359,
		P:       "4358FA9BEC0B5BB2C1FCB5435BAA59695F715B26C36194BB78FA622FB4ACA9C1E7FEDEE3E0474401EE1099FC39",
		A:       "313FF4EE42C0C3694425637E6F4B7112BA0B121B52C97028D547505F41FCEF0840D8E7086B5A5EAF2E227068E5",
		B:       "1C8388BD4466C3DB21CF3FB3FD7A47F0A9148C7B9E8EE20DD525364587396134123C3C12B7F01C1203228B951C",
		Gx:      "01F912703DB9C6EB48E545AAB18AFE06AE558DC5ADFD6556B20FDF4B409A90D620FD937D6129EEECF05A9EEF41",
		Gy:      "006FF1FCB3D97DE76662F8E700DED87A856F8727F9B699AEDA38455EDF837369BA7D09DB2360756A263E9FB4BE",
		N:       "001D5246CBB89E325F3DD149B15A69833A112C20B80F676AB9BC289F6183C37E399B8B82C576BE04EF1139ED0B",
		H:       588,
		D:       "000E20F13CB0BCBE82AAB9B14EC580C7DD48E035F7DA33199139C679982436AA6B8788575D977D6A39292B54BA",
		Qx:      "422332DE1C4D08F0BAFAF461CFCC45E54D2A7E03FFF7CB15D40D537F7C0E2BA5DECD6EC3B6E23998F919363387",
		Qy:      "233DC417864043194E96766CC0EF38576ECF5AAA456A178A636EA71082D3676FB6D6EE394E13F9AF719ED02B67",
	},
	{
		Name:    "secp256k1",
		BitSize: 256,
		P:       "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		A:       "0",
		B:       "7",
		Gx:      "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		Gy:      "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
		N:       "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		H:       1,
		D:       "1E99423A4ED27608A15A2616A2B0E9E52CED330AC530EDCC32C8FFC6A526AEDD",
		Qx:      "F028892BAD7ED57D2FB57BF33081D5CFCF6F9ED3D3D7F159C2E2FFF579DC341A",
		Qy:      "07CF33DA18BD734C600B96A72BBC4749D5141C90EC8AC328AE52DDFE2E505BDB",
	},
}
