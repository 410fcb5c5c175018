package database

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

var legalResourceSeed = []models.LegalResource{
	{Category: "protective_orders", Title: "How to file for a restraining order", Content: "A restraining order (protective order) is a court order that restricts contact between you and the person named in it. To file, visit your district court with identification and any evidence of harassment or threats. Emergency ex parte orders can be granted the same day and remain in force until the full hearing."},
	{Category: "protective_orders", Title: "Violations of a restraining order", Content: "If the restrained person contacts you in violation of the order, call the police immediately and note the date, time and nature of the contact. Violations are a criminal offence and each incident strengthens renewal applications."},
	{Category: "harassment", Title: "Workplace harassment complaints", Content: "Report harassment in writing to your employer's designated committee. Employers are required to acknowledge the complaint and complete an inquiry within the statutory period. Retaliation for filing a complaint is itself unlawful."},
	{Category: "harassment", Title: "Online harassment and cyberstalking", Content: "Preserve screenshots with visible timestamps and URLs before blocking the account. Cyberstalking, threats and the non-consensual sharing of images are criminal offences; reports can be filed at any police station or through the national cybercrime portal."},
	{Category: "domestic_violence", Title: "Your rights under domestic violence law", Content: "Protection under domestic violence statutes covers physical, emotional, verbal and economic abuse. You can seek a protection order, a residence order securing your right to stay in the shared household, and monetary relief, all through a single application."},
	{Category: "domestic_violence", Title: "Emergency shelters and helplines", Content: "Government-recognized shelters provide short-term accommodation without requiring a police report first. National helplines operate around the clock and can arrange transport to a shelter; calls do not appear on itemized phone bills."},
	{Category: "reporting", Title: "Filing a police report (FIR)", Content: "A first information report can be filed at any police station regardless of where the incident occurred; it must be transferred to the correct jurisdiction rather than refused. You are entitled to a free copy of the report. If the station declines to register it, you may escalate to the superintendent or file directly with a magistrate."},
	{Category: "reporting", Title: "Anonymous and third-party reporting", Content: "Many incidents can be reported anonymously or by a witness rather than the victim. Anonymous reports typically cannot support prosecution on their own but do create a record that corroborates later complaints."},
	{Category: "legal_aid", Title: "Free legal aid eligibility", Content: "Legal services authorities provide free representation to women, minors and anyone below the income threshold. Applications need only an identity document and a short statement of the matter; an advocate is usually assigned within two weeks."},
}

// SeedLegalResources inserts the default legal catalog when the table is
// empty. Administrator edits after deployment are preserved.
func SeedLegalResources() error {
	var count int64
	if err := DB.Model(&models.LegalResource{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.LegalResource, len(legalResourceSeed))
	copy(rows, legalResourceSeed)
	for i := range rows {
		rows[i].ID = uuid.New()
	}

	if err := DB.Create(&rows).Error; err != nil {
		return err
	}
	slog.Info("legal resources seeded", "count", len(rows))
	return nil
}
