package main

import (
	"log"
	"os"

	"legal-assistant-be/internal/model"
	"legal-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Statute Seeder...")

	seedConstitutionArticles(db)
	seedPenalCodeArticles(db)

	color.Green("✅ Success: Statute seeding completed.")
}

func seedConstitutionArticles(db *gorm.DB) {
	color.Yellow("Seeding Constitution Articles...")

	articles := []model.ConstitutionArticle{
		{
			Id:        uuid.New(),
			ArticleNo: 20,
			Title:     "Özel hayatın gizliliği",
			Content:   "Herkes, özel hayatına ve aile hayatına saygı gösterilmesini isteme hakkına sahiptir. Özel hayatın ve aile hayatının gizliliğine dokunulamaz.",
			Rationale: "Kişinin maddi ve manevi varlığını koruma hakkının bir uzantısı olarak özel hayat alanı devlet müdahalesine karşı güvence altına alınmıştır.",
		},
		{
			Id:        uuid.New(),
			ArticleNo: 36,
			Title:     "Hak arama hürriyeti",
			Content:   "Herkes, meşru vasıta ve yollardan faydalanmak suretiyle yargı mercileri önünde davacı veya davalı olarak iddia ve savunma ile adil yargılanma hakkına sahiptir.",
			Rationale: "Adil yargılanma hakkı, hukuk devletinin temel unsurlarından biri olarak anayasal güvenceye bağlanmıştır.",
		},
		{
			Id:        uuid.New(),
			ArticleNo: 38,
			Title:     "Suç ve cezalara ilişkin esaslar",
			Content:   "Kimse, işlendiği zaman yürürlükte bulunan kanunun suç saymadığı bir fiilden dolayı cezalandırılamaz; kimseye suçu işlediği zaman kanunda o suç için konulmuş olan cezadan daha ağır bir ceza verilemez.",
			Rationale: "Suçta ve cezada kanunilik ilkesi, ceza hukukunun öngörülebilirliğini sağlar.",
		},
	}

	for _, article := range articles {
		result := db.Where("article_no = ?", article.ArticleNo).FirstOrCreate(&article)
		if result.Error != nil {
			log.Printf("Warn: Failed to seed constitution article %d: %v", article.ArticleNo, result.Error)
		}
	}
}

func seedPenalCodeArticles(db *gorm.DB) {
	color.Yellow("Seeding Penal Code Articles...")

	articles := []model.PenalCodeArticle{
		{
			Id:        uuid.New(),
			ArticleNo: 134,
			Title:     "Özel hayatın gizliliğini ihlal",
			Content:   "Kişilerin özel hayatının gizliliğini ihlal eden kimse, bir yıldan üç yıla kadar hapis cezası ile cezalandırılır. Gizliliğin görüntü veya seslerin kayda alınması suretiyle ihlal edilmesi halinde, verilecek ceza bir kat artırılır.",
		},
		{
			Id:        uuid.New(),
			ArticleNo: 135,
			Title:     "Kişisel verilerin kaydedilmesi",
			Content:   "Hukuka aykırı olarak kişisel verileri kaydeden kimseye bir yıldan üç yıla kadar hapis cezası verilir. Kişisel verinin, kişilerin siyasi, felsefi veya dini görüşlerine, ırki kökenlerine ilişkin olması halinde ceza yarı oranında artırılır.",
		},
		{
			Id:        uuid.New(),
			ArticleNo: 136,
			Title:     "Verileri hukuka aykırı olarak verme veya ele geçirme",
			Content:   "Kişisel verileri, hukuka aykırı olarak bir başkasına veren, yayan veya ele geçiren kişi, iki yıldan dört yıla kadar hapis cezası ile cezalandırılır.",
		},
	}

	for _, article := range articles {
		result := db.Where("article_no = ?", article.ArticleNo).FirstOrCreate(&article)
		if result.Error != nil {
			log.Printf("Warn: Failed to seed penal code article %d: %v", article.ArticleNo, result.Error)
		}
	}
}
