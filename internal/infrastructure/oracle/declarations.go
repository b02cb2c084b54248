package oracle

import (
	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase"

	"google.golang.org/genai"
)

const systemInstruction = `Anda adalah asisten AI untuk pelaporan dan pengetahuan tentang Zakat.
Tugas utama Anda adalah membantu relawan mengelola data laporan zakat dengan fungsi yang tersedia (lihat, tambah, ubah, hapus).

Jika pengguna bertanya tentang konsep atau hukum Zakat, jawablah berdasarkan Fikih Zakat dengan merujuk pada 4 mazhab (Hanafi, Maliki, Syafi'i, Hanbali), dengan penekanan pada mazhab Syafi'i yang dianut mayoritas muslim Indonesia.

Aturan menjawab pertanyaan pengetahuan:
1. Jika Anda mengetahui jawabannya, jawab dengan jelas dan sebutkan perbedaan pandangan mazhab bila ada. Di akhir jawaban SELALU tambahkan kalimat: "Untuk lebih memastikan, silakan bertanya kembali kepada para ustadz yg lebih paham disekitar anda".
2. Jika pertanyaan di luar pengetahuan Anda tentang Fikih Zakat, sampaikan dengan sopan, misalnya: "Mohon maaf, saya belum memiliki informasi spesifik mengenai hal tersebut dalam basis pengetahuan saya tentang Fikih Zakat."
3. Jangan menjawab pertanyaan di luar topik Zakat.`

var donationTypeEnum = func() []string {
	out := make([]string, len(entities.DonationTypes))
	for i, t := range entities.DonationTypes {
		out[i] = string(t)
	}
	return out
}()

func reportProperties(prefix string) map[string]*genai.Schema {
	return map[string]*genai.Schema{
		string(entities.FieldOperatorCode): {Type: genai.TypeString, Description: prefix + "kode relawan yang mencatat."},
		string(entities.FieldDonorName):    {Type: genai.TypeString, Description: prefix + "nama lengkap pemberi zakat (muzakki)."},
		string(entities.FieldDonationType): {Type: genai.TypeString, Enum: donationTypeEnum, Description: prefix + "jenis zakat. Pilihan: " + entities.DonationTypeNames() + "."},
		string(entities.FieldAmount):       {Type: genai.TypeNumber, Description: prefix + "jumlah donasi dalam Rupiah."},
		string(entities.FieldAttachment):   {Type: genai.TypeString, Description: prefix + "nama file bukti transfer."},
	}
}

var functionDeclarations = []*genai.FunctionDeclaration{
	{
		Name:        usecase.OpListReports,
		Description: "Mendapatkan daftar semua laporan zakat dari database.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	},
	{
		Name:        usecase.OpCreateReport,
		Description: "Menambahkan laporan zakat baru. Isi hanya field yang disebutkan pengguna.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: reportProperties("")},
	},
	{
		Name:        usecase.OpUpdateReport,
		Description: "Memperbarui laporan zakat berdasarkan ID-nya.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: func() map[string]*genai.Schema {
				p := reportProperties("Nilai baru: ")
				p["id"] = &genai.Schema{Type: genai.TypeNumber, Description: "ID laporan zakat yang akan diperbarui."}
				return p
			}(),
			Required: []string{"id"},
		},
	},
	{
		Name:        usecase.OpDeleteReport,
		Description: "Menghapus laporan zakat berdasarkan ID-nya.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"id": {Type: genai.TypeNumber, Description: "ID laporan zakat yang akan dihapus."}},
			Required:   []string{"id"},
		},
	},
	{
		Name:        usecase.OpCreateOperator,
		Description: "Memulai pendaftaran relawan baru (khusus admin). Data relawan akan ditanyakan satu per satu.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	},
	{
		Name:        usecase.OpListOperators,
		Description: "Mendapatkan daftar relawan yang terdaftar (khusus admin).",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	},
}
