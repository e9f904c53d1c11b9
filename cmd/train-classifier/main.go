// Command train-classifier fits the document-type model on the labeled
// corpus and writes the artifact the service loads at startup.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/serisow/docintel/classifier"
)

// trainingCorpus is the labeled sample set. In production you would have far
// more data; this is enough to separate the four document families.
var trainingCorpus = []classifier.Example{
	// Invoices
	{Text: "Invoice Number INV-001 Date 01/15/2024 Total Amount $1,500.00 Tax $150.00 Company ABC Traders", Label: "invoice"},
	{Text: "INVOICE Company XYZ Corp Date: 03/22/2024 Subtotal: $2,300 Tax: $230 Total: $2,530", Label: "invoice"},
	{Text: "Bill To: Customer Name Invoice #12345 Date: 05/10/2024 Amount Due: $4,200.00", Label: "invoice"},
	{Text: "Invoice Date 06/15/2024 Invoice Total $890.50 Tax $89.05 Company Tech Solutions", Label: "invoice"},
	{Text: "Purchase Order Total $3,450 Tax $345 Invoice Date 07/20/2024", Label: "invoice"},

	// CVs/Resumes
	{Text: "John Doe Skills: Python, JavaScript, React Experience: 5 years Education: Computer Science", Label: "cv"},
	{Text: "Resume Software Engineer Skills Java Python AWS 8 years experience Bachelor's Degree", Label: "cv"},
	{Text: "CV Name: Jane Smith Programming Languages: C++, Go, Rust 3+ years professional experience", Label: "cv"},
	{Text: "Professional Summary 10 years experience Skills: Machine Learning, AI, Deep Learning PhD", Label: "cv"},
	{Text: "Technical Skills Python Django Flask PostgreSQL 6 years software development", Label: "cv"},

	// ID Cards
	{Text: "National ID Card Name: Michael Brown Date of Birth: 01-05-1990 Address: 123 Main St", Label: "id_card"},
	{Text: "Driver License Name John Smith DOB 03-15-1985 Address 456 Oak Avenue", Label: "id_card"},
	{Text: "Identity Card Full Name: Sarah Johnson Date of Birth: 12-25-1992 Residential Address", Label: "id_card"},
	{Text: "Passport Name Robert Wilson Date of Birth 07-10-1988 Place of Birth New York", Label: "id_card"},
	{Text: "ID Number 123456789 Name David Lee DOB 09-20-1995 Address 789 Pine Road", Label: "id_card"},

	// Receipts
	{Text: "Receipt Store: SuperMart Date: 08/01/2024 Total: $45.67 Thank you for shopping", Label: "receipt"},
	{Text: "RECEIPT Grocery Store Items purchased Total Amount $67.89 Date 08/15/2024", Label: "receipt"},
	{Text: "Purchase Receipt Restaurant Name Total $125.00 Date 08/20/2024 Payment: Credit Card", Label: "receipt"},
	{Text: "Receipt Coffee Shop Date 08/25/2024 Amount $8.50 Transaction ID 98765", Label: "receipt"},
	{Text: "Store Receipt Gas Station Total $52.30 Date 08/30/2024 Payment Method Cash", Label: "receipt"},
}

func main() {
	outPath := flag.String("out", "model_artifacts/classifier.json", "where to write the model artifact")
	flag.Parse()

	model, err := classifier.Train(trainingCorpus)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	if err := model.Save(*outPath); err != nil {
		log.Fatalf("saving model failed: %v", err)
	}

	// Sanity check the freshly trained model on one sample per class.
	samples := []string{
		"Invoice Number 555 Total $99.00",
		"Skills: Python, Go 4 years experience",
		"Name: Alice Example DOB 01/02/1993",
		"Receipt Total $12.50 Thank you",
	}
	for _, s := range samples {
		label, confidence := model.Classify(s)
		fmt.Printf("%-45q -> %s (%.3f)\n", s, label, confidence)
	}

	fmt.Println("Model saved to", *outPath)
}
