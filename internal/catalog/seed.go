package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Seed returns the demo storefront catalog. Everything lives in
// memory for the lifetime of the process.
func Seed() *Store {
	return NewStore(seedProducts(), seedCategories(), seedBrands())
}

func seedBrands() []Brand {
	return []Brand{
		{ID: "b1", Name: "TechNova", Logo: "https://picsum.photos/seed/logo1/100/100"},
		{ID: "b2", Name: "AudioPhile", Logo: "https://picsum.photos/seed/logo2/100/100"},
		{ID: "b3", Name: "ComfortHome", Logo: "https://picsum.photos/seed/logo3/100/100"},
		{ID: "b4", Name: "FitGear", Logo: "https://picsum.photos/seed/logo4/100/100"},
	}
}

func seedCategories() []Category {
	return []Category{
		{
			ID: "c1", Name: "Eletrônicos", Slug: "eletronicos",
			Subcategories: []SubCategory{
				{ID: "s1", Name: "Smartphones", Slug: "smartphones"},
				{ID: "s2", Name: "Laptops", Slug: "laptops"},
				{ID: "s3", Name: "Acessórios", Slug: "acessorios"},
			},
		},
		{
			ID: "c2", Name: "Áudio", Slug: "audio",
			Subcategories: []SubCategory{
				{ID: "s4", Name: "Headphones", Slug: "headphones"},
				{ID: "s5", Name: "Caixas de Som", Slug: "caixas-de-som"},
			},
		},
		{
			ID: "c3", Name: "Casa Inteligente", Slug: "casa-inteligente",
			Subcategories: []SubCategory{
				{ID: "s6", Name: "Iluminação", Slug: "iluminacao"},
				{ID: "s7", Name: "Segurança", Slug: "seguranca"},
			},
		},
	}
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pricePtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func productImages(seed string) []string {
	images := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		images = append(images, fmt.Sprintf("https://picsum.photos/seed/%s_%d/800/800", seed, i))
	}
	return images
}

func seedProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Name:        "Smartphone X-Pro Ultra",
			Description: "O Smartphone X-Pro Ultra redefine a experiência móvel com sua tela OLED de 6.7 polegadas e processador de última geração. Capture momentos incríveis com o sistema de câmera quádrupla.",
			Price:       price("3499.90"),
			OldPrice:    pricePtr("3999.90"),
			BrandID:     "b1", CategoryID: "c1", SubCategoryID: "s1",
			Images: productImages("phone_xpro"),
			Rating: 4.8, Reviews: 124, Stock: 15,
			Features: []string{"Tela OLED 120Hz", "5G", "256GB Armazenamento", "Câmera 108MP"},
		},
		{
			ID:          "p2",
			Name:        "Laptop Workstation Z",
			Description: "Potência bruta para profissionais. Renderize vídeos em 4K, compile código complexo e execute multitarefas sem esforço.",
			Price:       price("8999.00"),
			BrandID:     "b1", CategoryID: "c1", SubCategoryID: "s2",
			Images: productImages("laptop_z"),
			Rating: 4.9, Reviews: 45, Stock: 8,
			Features: []string{"Processador i9", "32GB RAM", "1TB SSD NVMe", "GPU RTX 4070"},
		},
		{
			ID:          "p3",
			Name:        "Fone NoiseCancel 3000",
			Description: "Mergulhe na sua música. O cancelamento de ruído ativo líder da indústria bloqueia o mundo exterior.",
			Price:       price("1299.50"),
			OldPrice:    pricePtr("1599.00"),
			BrandID:     "b2", CategoryID: "c2", SubCategoryID: "s4",
			Images: productImages("headphone_nc"),
			Rating: 4.7, Reviews: 320, Stock: 42,
			Features: []string{"ANC Híbrido", "30h de Bateria", "Áudio Espacial", "Conforto Premium"},
		},
		{
			ID:          "p4",
			Name:        "Smart Speaker Home",
			Description: "Controle sua casa com sua voz. Som preenche a sala e assistente virtual integrado.",
			Price:       price("499.00"),
			BrandID:     "b3", CategoryID: "c3", SubCategoryID: "s5",
			Images: productImages("speaker_home"),
			Rating: 4.5, Reviews: 89, Stock: 100,
			Features: []string{"Wi-Fi 6", "Som 360", "Hub Zigbee", "Microfone Far-field"},
		},
		{
			ID:          "p5",
			Name:        "Câmera de Segurança 360",
			Description: "Monitore sua casa de qualquer lugar. Visão noturna, detecção de movimento e áudio bidirecional.",
			Price:       price("299.90"),
			BrandID:     "b3", CategoryID: "c3", SubCategoryID: "s7",
			Images: productImages("cam_sec"),
			Rating: 4.6, Reviews: 210, Stock: 25,
			Features: []string{"1080p HD", "Visão Noturna", "IP65", "Armazenamento em Nuvem"},
		},
		{
			ID:          "p6",
			Name:        "Tablet Creator Pro",
			Description: "Perfeito para artistas e designers. Acompanha caneta sensível à pressão.",
			Price:       price("2599.00"),
			OldPrice:    pricePtr("2899.00"),
			BrandID:     "b1", CategoryID: "c1", SubCategoryID: "s3",
			Images: productImages("tablet_creator"),
			Rating: 4.7, Reviews: 56, Stock: 12,
			Features: []string{"Tela Liquid Retina", "Chip M2", "Suporte a Stylus", "Bateria o dia todo"},
		},
	}
}
