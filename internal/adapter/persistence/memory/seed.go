package memory

import (
	"time"

	"casamento_pe/internal/domain/entities"
)

// SeedGifts returns the demo catalog served when no database is configured.
// It is a representative cut of the real registry, including zoeira items
// that never become fully funded.
func SeedGifts() []entities.Gift {
	now := time.Now().UTC()

	gift := func(id, name, description string, price float64, imageURL string, category entities.Category) entities.Gift {
		return entities.Gift{
			ID:          id,
			Name:        name,
			Description: description,
			Price:       price,
			ImageURL:    imageURL,
			Category:    category,
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []entities.Gift{
		gift("1", "Lua de Mel dos Sonhos",
			"Contribua para a nossa lua de mel! Qualquer valor ajuda a realizar nosso sonho de viajar juntos.",
			10000, "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=500&h=500&fit=crop", entities.CategoryExperiencias),
		gift("2", "Pacote Viagem Romântica",
			"Uma semana em destino paradisíaco para celebrar nosso amor. Resort all-inclusive.",
			8000, "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=500&h=500&fit=crop", entities.CategoryExperiencias),
		gift("3", "Smart TV 65 Polegadas 4K",
			"Smart TV LED 65 polegadas com resolução 4K UHD, sistema operacional inteligente e som premium.",
			5500, "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500&h=500&fit=crop", entities.CategoryEletrodomesticos),
		gift("4", "Geladeira Frost Free 400L",
			"Geladeira duplex frost free com dispenser de água, design moderno e economia de energia.",
			4500, "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=500&h=500&fit=crop", entities.CategoryEletrodomesticos),
		gift("5", "Colchão King Size Molas Ensacadas",
			"Colchão king size com molas ensacadas individualmente e pillow top para noites perfeitas.",
			4000, "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=500&h=500&fit=crop", entities.CategoryQuarto),
		gift("6", "Lavadora de Roupas 12kg",
			"Máquina de lavar 12kg com lavagem automática, centrifugação potente e economia de água.",
			3200, "https://images.unsplash.com/photo-1626806787461-102c1bfaaea1?w=500&h=500&fit=crop", entities.CategoryEletrodomesticos),
		gift("7", "Sofá Retrátil 3 Lugares",
			"Sofá retrátil e reclinável de 3 lugares em tecido suede, confortável para maratonar séries.",
			2800, "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500&h=500&fit=crop", entities.CategorySala),
		gift("8", "Gabinete de Banheiro Completo",
			"Gabinete de banheiro com cuba esculpida, espelheira e armário auxiliar.",
			1800, "https://images.unsplash.com/photo-1620626011761-996317b8d101?w=500&h=500&fit=crop", entities.CategoryBanheiro),
		gift("9", "Jogo de Panelas Antiaderente 10 Peças",
			"Conjunto de panelas antiaderentes com cabos antitérmicos e tampas de vidro temperado.",
			900, "https://images.unsplash.com/photo-1584990347449-a2d4c2c044c0?w=500&h=500&fit=crop", entities.CategoryCozinha),
		gift("10", "Ensaio Fotográfico Profissional",
			"Ensaio fotográfico profissional do casal para eternizar o início da nossa vida juntos.",
			1200, "https://images.unsplash.com/photo-1606216794074-735e91aa2c92?w=500&h=500&fit=crop", entities.CategoryExperiencias),
		gift("11", "Jantar Romântico",
			"Jantar romântico em restaurante estrelado para comemorar a lua de mel.",
			500, "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=500&h=500&fit=crop", entities.CategoryExperiencias),
		gift("12", "Air Fryer 12 Litros",
			"Fritadeira elétrica sem óleo com 12 litros, janela de visualização e painel digital.",
			750, "https://images.unsplash.com/photo-1648145325526-9a3e1bba8ee8?w=500&h=500&fit=crop", entities.CategoryCozinha),
		gift("13", "Taxa de Aturar o Noivo",
			"Contribuição simbólica de solidariedade à noiva. Sem teto: aceita contribuições para sempre.",
			100, "https://images.unsplash.com/photo-1518199266791-5375a83190b7?w=500&h=500&fit=crop", entities.CategoryZoeira),
		gift("14", "Fundo Emergencial de Pizza",
			"Para as noites em que ninguém quer cozinhar. Qualquer valor mantém o casamento em paz.",
			200, "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&h=500&fit=crop", entities.CategoryZoeira),
	}
}
