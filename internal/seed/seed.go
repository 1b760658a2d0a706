package seed

import (
	"context"
	"fmt"

	"bestlocations/internal/models"
)

const defaultImage = "https://unsplash.com/collections/1517797"

// Store is the persistence surface needed to seed places.
type Store interface {
	CountPlaces(ctx context.Context) (int64, error)
	ReplaceAllPlaces(ctx context.Context, places []models.CreatePlaceInput) error
}

// Samples returns the bundled sample places.
func Samples() []models.CreatePlaceInput {
	return []models.CreatePlaceInput{
		{
			Title:       "Taman Mini Indonesia Indah",
			Price:       "Rp 20.000",
			Description: "Taman hiburan keluarga dengan berbagai replika bangunan dari seluruh Indonesia",
			Location:    "Taman Mini Indonesia Indah, Jakarta",
			Image:       defaultImage,
		},
		{
			Title:       "Pantai Kuta",
			Price:       "Gratis",
			Description: "Pantai yang terkenal di Bali dengan pemandangan sunset yang indah",
			Location:    "Pantai Kuta, Kuta, Badung Regency, Bali",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/b/bf/Pantai_Kuta_sejuta_cinta.jpg/1200px-Pantai_Kuta_sejuta_cinta.jpg",
		},
		{
			Title:       "Borobudur",
			Price:       "Rp 25.000",
			Description: "Candi Buddha terbesar di dunia yang terletak di Magelang, Jawa Tengah",
			Location:    "Borobudur, Magelang, Central Java",
			Image:       defaultImage,
		},
		{
			Title:       "Kawah Putih",
			Price:       "Rp 50.000",
			Description: "Kawah vulkanik dengan danau berwarna putih di Bandung, Jawa Barat",
			Location:    "Kawah Putih, Ciwidey, West Java",
			Image:       defaultImage,
		},
		{
			Title:       "Malioboro",
			Price:       "Gratis",
			Description: "Jalan utama di Yogyakarta dengan berbagai toko dan kuliner khas",
			Location:    "Jl. Malioboro, Yogyakarta City, Special Region of Yogyakarta",
			Image:       defaultImage,
		},
		{
			Title:       "Pantai Tanjung Aan",
			Price:       "Rp 10.000",
			Description: "Pantai dengan pasir berwarna putih dan air laut yang jernih di Lombok, Nusa Tenggara Barat",
			Location:    "Pantai Tanjung Aan, Lombok, West Nusa Tenggara",
			Image:       defaultImage,
		},
		{
			Title:       "Bukit Bintang",
			Price:       "Gratis",
			Description: "Kawasan perbelanjaan dan hiburan di Kuala Lumpur, Malaysia",
			Location:    "Bukit Bintang, Kuala Lumpur, Federal Territory of Kuala Lumpur, Malaysia",
			Image:       defaultImage,
		},
		{
			Title:       "Candi Prambanan",
			Price:       "Rp 25.000",
			Description: "Candi Hindu terbesar di Indonesia yang terletak di Yogyakarta",
			Location:    "Candi Prambanan, Sleman, Special Region of Yogyakarta",
			Image:       defaultImage,
		},
		{
			Title:       "Danau Toba",
			Price:       "Gratis",
			Description: "Danau vulkanik terbesar di Indonesia yang terletak di Sumatera Utara",
			Location:    "Danau Toba, North Sumatra",
			Image:       defaultImage,
		},
		{
			Title:       "Kawah Ijen",
			Price:       "Rp 100.000",
			Description: "Kawah vulkanik dengan fenomena blue fire di Banyuwangi, Jawa Timur",
			Location:    "Kawah Ijen, Banyuwangi, East Java",
			Image:       defaultImage,
		},
		{
			Title:       "Pantai Sanur",
			Price:       "Gratis",
			Description: "Pantai di Bali yang cocok untuk berenang dan melihat matahari terbit",
			Location:    "Pantai Sanur, Denpasar, Bali",
			Image:       defaultImage,
		},
		{
			Title:       "Candi Borobudur",
			Price:       "Rp 25.000",
			Description: "Candi Buddha terbesar di dunia yang terletak di Magelang, Jawa Tengah",
			Location:    "Candi Borobudur, Borobudur, Magelang, Central Java",
			Image:       defaultImage,
		},
		{
			Title:       "Pulau Komodo",
			Price:       "Rp 5.000.000",
			Description: "Pulau di Indonesia yang terkenal dengan komodo, hewan terbesar di dunia",
			Location:    "Pulau Komodo, East Nusa Tenggara",
			Image:       defaultImage,
		},
		{
			Title:       "Taman Nasional Gunung Rinjani",
			Price:       "Rp 150.000",
			Description: "Taman nasional yang terletak di Lombok dan memiliki gunung tertinggi kedua di Indonesia",
			Location:    "Taman Nasional Gunung Rinjani, Lombok, West Nusa Tenggara",
			Image:       defaultImage,
		},
		{
			Title:       "Bukit Tinggi",
			Price:       "Gratis",
			Description: "Kota kecil yang terletak di Sumatera Barat dengan arsitektur khas Eropa",
			Location:    "Bukit Tinggi, West Sumatra",
			Image:       defaultImage,
		},
		{
			Title:       "Pulau Weh",
			Price:       "Rp 50.000",
			Description: "Pulau yang terletak di ujung barat Indonesia dengan keindahan bawah laut yang luar biasa",
			Location:    "Pulau Weh, Sabang, Aceh",
			Image:       defaultImage,
		},
		{
			Title:       "Taman Safari Indonesia",
			Price:       "Rp 180.000",
			Description: "Taman hiburan keluarga dengan berbagai satwa liar di Cisarua, Bogor",
			Location:    "Taman Safari Indonesia, Cisarua, West Java",
			Image:       defaultImage,
		},
		{
			Title:       "Gunung Merbabu",
			Price:       "Rp 50.000",
			Description: "Gunung yang terletak di Jawa Tengah dengan pemandangan matahari terbit yang indah",
			Location:    "Gunung Merbabu, Central Java",
			Image:       defaultImage,
		},
		{
			Title:       "Pulau Lombok",
			Price:       "Gratis",
			Description: "Pulau di Indonesia yang terkenal dengan keindahan pantainya",
			Location:    "Pulau Lombok, West Nusa Tenggara",
			Image:       defaultImage,
		},
		{
			Title:       "Tanjung Lesung",
			Price:       "Rp 100.000",
			Description: "Kawasan wisata pantai di Banten yang cocok untuk bersantai dan berenang",
			Location:    "Tanjung Lesung, Pandeglang, Banten",
			Image:       defaultImage,
		},
	}
}

// Reset deletes every place and stores the samples. It returns how many
// places were written.
func Reset(ctx context.Context, s Store) (int, error) {
	samples := Samples()
	if err := s.ReplaceAllPlaces(ctx, samples); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}
	return len(samples), nil
}

// EnsureSamples stores the samples only when no place exists yet.
func EnsureSamples(ctx context.Context, s Store) (bool, error) {
	n, err := s.CountPlaces(ctx)
	if err != nil {
		return false, fmt.Errorf("count places: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := Reset(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}
