package database

import (
	"cyberwalk_backend/internal/model"
	"encoding/json"
	"log"

	"gorm.io/gorm"
)

// SeedGameContent loads the sample content set on an empty database: one
// full two-profile level, a second harder level, and the solo story graph.
// Re-running on a populated database is a no-op.
func SeedGameContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Level{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Content already present, skipping seed")
		return nil
	}

	log.Println("Seeding sample levels and story scenes")

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedHostelLevel(tx); err != nil {
			return err
		}
		if err := seedCampusLevel(tx); err != nil {
			return err
		}
		return seedStoryScenes(tx)
	})
}

func jsonList(items ...string) json.RawMessage {
	data, _ := json.Marshal(items)
	return data
}

func seedHostelLevel(tx *gorm.DB) error {
	level := &model.Level{
		Name:        "University Hostel Life",
		Description: "You're a student living in a hostel away from home. Navigate common cyber threats targeting students.",
		Difficulty:  model.LevelDifficultyEasy,
		Enabled:     true,
		OrderIndex:  1,
		MaxAttacks:  5,
	}
	if err := tx.Create(level).Error; err != nil {
		return err
	}

	profiles := []model.DefenderProfile{
		{
			LevelID:         level.ID,
			Name:            "Sifat",
			Description:     "Computer Science student living in hostel, away from family in Dhaka. Tech-savvy but emotionally vulnerable when family is mentioned.",
			Age:             21,
			AgeGroup:        "YOUNG",
			Occupation:      "Computer Science Student",
			TechSavviness:   "HIGH",
			MentalState:     "STRESSED",
			FinancialStatus: "STRUGGLING",
			AvatarIcon:      "student-m",
			Relationships:   jsonList("mother", "father", "best friend Rahim"),
			Vulnerabilities: jsonList("family-oriented", "panics under pressure"),
		},
		{
			LevelID:         level.ID,
			Name:            "Riya",
			Description:     "Business major from local area. Lives close to campus, family-oriented, moderate tech skills.",
			Age:             20,
			AgeGroup:        "YOUNG",
			Occupation:      "Business Student",
			TechSavviness:   "MEDIUM",
			MentalState:     "CALM",
			FinancialStatus: "STABLE",
			AvatarIcon:      "student-f",
			Relationships:   jsonList("mother", "bank"),
			Vulnerabilities: jsonList("trusting"),
		},
	}
	if err := tx.Create(&profiles).Error; err != nil {
		return err
	}

	fakeCall := &model.AttackScenario{
		LevelID:           level.ID,
		AttackType:        "FAKE_CALL",
		Name:              "Family Emergency Call",
		Description:       "Scammer pretends to be a family member in distress",
		AttackerNarrative: "Target students away from home. Use emotional manipulation about family emergencies to extract money or information.",
	}
	if err := tx.Create(fakeCall).Error; err != nil {
		return err
	}

	callAsMother := &model.AttackOption{
		AttackScenarioID:   fakeCall.ID,
		Label:              "Call as Mother",
		Description:        "Impersonate the student's mother claiming medical emergency",
		AttackerMessage:    "Beta, I'm in the hospital! I need money urgently for treatment. Please send 50,000 Taka immediately!",
		ImpersonatedEntity: "Mother",
		BaseAttackerPoints: 30,
		RiskLevel:          4,
		CriticalRisk:       true,
	}
	if err := tx.Create(callAsMother).Error; err != nil {
		return err
	}

	motherChoices := []model.DefenderChoice{
		{
			AttackOptionID:     callAsMother.ID,
			Label:              "Send money immediately",
			Description:        "Panic and transfer money without verification",
			Outcome:            "Sifat sends 50,000 Taka. Later discovers mother was never in hospital. Life savings gone.",
			DefenderScoreDelta: -40,
			AttackerScoreDelta: 30,
			ChoiceType:         model.ChoiceTypeWrong,
			CriticallyWrong:    true,
			EducationalNote:    "Always call back on known numbers or video call before sending money.",
		},
		{
			AttackOptionID:     callAsMother.ID,
			Label:              "Call father to verify",
			Description:        "Stay calm and cross-check with another family member",
			Outcome:            "Father confirms mother is safe at home. Scam prevented!",
			DefenderScoreDelta: 25,
			AttackerScoreDelta: -15,
			ChoiceType:         model.ChoiceTypeCorrect,
			EducationalNote:    "Always verify emergency calls through an alternative contact. Scammers rely on panic.",
		},
		{
			AttackOptionID:     callAsMother.ID,
			Label:              "Demand video call first",
			Description:        "Ask for video proof before taking action",
			Outcome:            "Scammer hangs up immediately. Crisis averted!",
			DefenderScoreDelta: 30,
			AttackerScoreDelta: -20,
			ChoiceType:         model.ChoiceTypeCorrect,
			CriticallyRight:    true,
			EducationalNote:    "Video calls are hard to fake. Use them to verify identity in emergencies.",
		},
	}
	if err := tx.Create(&motherChoices).Error; err != nil {
		return err
	}

	phishing := &model.AttackScenario{
		LevelID:           level.ID,
		AttackType:        "PHISHING_EMAIL",
		Name:              "Scholarship Phishing",
		Description:       "Fake scholarship portal harvesting university credentials",
		AttackerNarrative: "Students chase funding. A convincing scholarship mail with a login link captures portal credentials.",
	}
	if err := tx.Create(phishing).Error; err != nil {
		return err
	}

	scholarshipMail := &model.AttackOption{
		AttackScenarioID:   phishing.ID,
		Label:              "Send scholarship award email",
		Description:        "Official-looking mail announcing a merit scholarship",
		AttackerMessage:    "Congratulations! You have been selected for the Merit Scholarship 2025. Log in within 24 hours to claim: uni-scholarships.example/claim",
		ImpersonatedEntity: "University Financial Aid Office",
		BaseAttackerPoints: 20,
		RiskLevel:          3,
	}
	if err := tx.Create(scholarshipMail).Error; err != nil {
		return err
	}

	// Second stage of the phishing chain, reached through a follow-up.
	fakePortal := &model.AttackOption{
		AttackScenarioID:   phishing.ID,
		Label:              "Present fake login portal",
		Description:        "Clone of the university SSO page",
		AttackerMessage:    "Session expired. Please re-enter your university ID and password to continue.",
		ImpersonatedEntity: "University SSO",
		BaseAttackerPoints: 25,
		RiskLevel:          4,
		CriticalRisk:       true,
	}
	if err := tx.Create(fakePortal).Error; err != nil {
		return err
	}

	mailChoices := []model.DefenderChoice{
		{
			AttackOptionID:         scholarshipMail.ID,
			Label:                  "Open the link",
			Description:            "Click through to claim the scholarship",
			Outcome:                "The link opens a login page that looks exactly like the university portal.",
			DefenderScoreDelta:     -10,
			AttackerScoreDelta:     10,
			ChoiceType:             model.ChoiceTypeRisky,
			EducationalNote:        "Hover over links and check the domain before clicking. Deadlines create false urgency.",
			FollowUpAttackOptionID: &fakePortal.ID,
		},
		{
			AttackOptionID:     scholarshipMail.ID,
			Label:              "Check the sender domain",
			Description:        "Inspect the address behind the display name",
			Outcome:            "The mail came from uni-scholarships.example, not the university domain. Reported to IT.",
			DefenderScoreDelta: 30,
			AttackerScoreDelta: -20,
			ChoiceType:         model.ChoiceTypeCorrect,
			EducationalNote:    "Display names are trivial to spoof; the sending domain is what matters.",
			EndsScenario:       true,
		},
	}
	if err := tx.Create(&mailChoices).Error; err != nil {
		return err
	}

	portalChoices := []model.DefenderChoice{
		{
			AttackOptionID:     fakePortal.ID,
			Label:              "Enter university credentials",
			Description:        "Log in to finish the claim",
			Outcome:            "Credentials captured. The attacker now controls the student portal account.",
			DefenderScoreDelta: -35,
			AttackerScoreDelta: 25,
			ChoiceType:         model.ChoiceTypeWrong,
			CriticallyWrong:    true,
			EducationalNote:    "A login prompt after following an email link is the classic credential trap.",
			EndsScenario:       true,
		},
		{
			AttackOptionID:     fakePortal.ID,
			Label:              "Close the page and go to the real portal",
			Description:        "Type the known university address manually",
			Outcome:            "The real portal shows no scholarship notice. Phishing attempt confirmed and reported.",
			DefenderScoreDelta: 35,
			AttackerScoreDelta: -25,
			ChoiceType:         model.ChoiceTypeCorrect,
			CriticallyRight:    true,
			EducationalNote:    "Never authenticate through emailed links; navigate to known addresses yourself.",
			EndsScenario:       true,
		},
	}
	return tx.Create(&portalChoices).Error
}

func seedCampusLevel(tx *gorm.DB) error {
	level := &model.Level{
		Name:        "Campus-Wide Attacks",
		Description: "Attacks scale up: rogue networks and SMS fraud across the whole campus.",
		Difficulty:  model.LevelDifficultyMedium,
		Enabled:     true,
		OrderIndex:  2,
		MaxAttacks:  4,
	}
	if err := tx.Create(level).Error; err != nil {
		return err
	}

	profile := &model.DefenderProfile{
		LevelID:         level.ID,
		Name:            "Mr. Karim",
		Description:     "Administrative officer handling student records. Comfortable with paperwork, wary of computers.",
		Age:             52,
		AgeGroup:        "MIDDLE_AGED",
		Occupation:      "University Administrator",
		TechSavviness:   "LOW",
		MentalState:     "DISTRACTED",
		FinancialStatus: "STABLE",
		AvatarIcon:      "officer",
		Relationships:   jsonList("bank", "IT helpdesk"),
		Vulnerabilities: jsonList("authority-deferent", "unfamiliar with technology"),
	}
	if err := tx.Create(profile).Error; err != nil {
		return err
	}

	wifi := &model.AttackScenario{
		LevelID:           level.ID,
		AttackType:        "FAKE_WIFI",
		Name:              "Evil Twin WiFi",
		Description:       "Fake WiFi network mimicking the campus network",
		AttackerNarrative: "Set up rogue WiFi with a similar name to the campus network. Capture credentials and browsing data.",
	}
	if err := tx.Create(wifi).Error; err != nil {
		return err
	}

	rogueAP := &model.AttackOption{
		AttackScenarioID:   wifi.ID,
		Label:              "Create 'Campus_WiFi_Free' network",
		Description:        "Mimic the official network name with a slight variation",
		AttackerMessage:    "WiFi Network Available: Campus_WiFi_Free - No password required!",
		ImpersonatedEntity: "University IT Department",
		BaseAttackerPoints: 20,
		RiskLevel:          3,
	}
	if err := tx.Create(rogueAP).Error; err != nil {
		return err
	}

	choices := []model.DefenderChoice{
		{
			AttackOptionID:     rogueAP.ID,
			Label:              "Connect immediately - free WiFi!",
			Description:        "Jump on free WiFi without checking",
			Outcome:            "Connected to the evil twin. The attacker intercepts passwords and banking info.",
			DefenderScoreDelta: -30,
			AttackerScoreDelta: 20,
			ChoiceType:         model.ChoiceTypeWrong,
			EducationalNote:    "Free public WiFi is tempting but dangerous. Always verify network authenticity.",
		},
		{
			AttackOptionID:     rogueAP.ID,
			Label:              "Check with the IT helpdesk first",
			Description:        "Verify whether this is a legitimate network",
			Outcome:            "Helpdesk confirms the official network is 'Campus_Secure'. Fake network reported.",
			DefenderScoreDelta: 30,
			AttackerScoreDelta: -20,
			ChoiceType:         model.ChoiceTypeCorrect,
			EducationalNote:    "When a network appears out of nowhere, the people who run the real one will know.",
		},
		{
			AttackOptionID:     rogueAP.ID,
			Label:              "Use mobile data instead",
			Description:        "Avoid untrusted networks entirely",
			Outcome:            "Uses secure mobile data. No risk of interception.",
			DefenderScoreDelta: 25,
			AttackerScoreDelta: -15,
			ChoiceType:         model.ChoiceTypeCorrect,
			EducationalNote:    "When in doubt, mobile data or a VPN on trusted networks is the safest option.",
		},
	}
	return tx.Create(&choices).Error
}

func seedStoryScenes(tx *gorm.DB) error {
	scenes := []model.StoryScene{
		{
			VideoID:             "1",
			VideoPath:           "/video/1.mp4",
			Description:         "An unknown caller claims to be from the bank's fraud department.",
			AttackType:          "FAKE_CALL",
			AttackerDescription: "Open with the fraud-department script to build urgency.",
		},
		{
			VideoID:             "2",
			VideoPath:           "/video/2.mp4",
			Description:         "The caller asks for the one-time code that just arrived by SMS.",
			AttackType:          "FAKE_CALL",
			AttackerDescription: "Push for the OTP before the target has time to think.",
		},
		{
			VideoID:             "3",
			VideoPath:           "/video/3.mp4",
			Description:         "A follow-up SMS contains a link to 'secure your account'.",
			AttackType:          "FAKE_SMS",
			AttackerDescription: "The link leads to a cloned banking login.",
		},
		{
			VideoID:     "4",
			VideoPath:   "/video/4.mp4",
			Description: "Final decision: the cloned page asks for full card details.",
			AttackType:  "FAKE_SMS",
		},
		{
			VideoID:     "4_1",
			VideoPath:   "/video/4_1.mp4",
			Description: "Account drained. The simulation replays every warning sign that was missed.",
			LeafNode:    true,
		},
		{
			VideoID:     "4_2",
			VideoPath:   "/video/4_2.mp4",
			Description: "Attack defeated. The simulation recaps the verification habits that worked.",
			LeafNode:    true,
		},
	}
	if err := tx.Create(&scenes).Error; err != nil {
		return err
	}

	sceneID := func(videoID string) uint {
		for _, s := range scenes {
			if s.VideoID == videoID {
				return s.ID
			}
		}
		return 0
	}

	options := []model.StoryOption{
		{StorySceneID: sceneID("1"), Label: "Stay on the line", TargetVideoID: "2", DefenderScoreDelta: -10, AttackerScoreDelta: 10, Position: "bottom-left", InteractionType: "click"},
		{StorySceneID: sceneID("1"), Label: "Hang up and call the bank yourself", TargetVideoID: "3", DefenderScoreDelta: 20, AttackerScoreDelta: -10, Position: "bottom-right", InteractionType: "click"},
		{StorySceneID: sceneID("2"), Label: "Read out the code", TargetVideoID: "3", DefenderScoreDelta: -30, AttackerScoreDelta: 30, Position: "bottom-left", InteractionType: "click"},
		{StorySceneID: sceneID("2"), Label: "Refuse - banks never ask for OTPs", TargetVideoID: "3", DefenderScoreDelta: 30, AttackerScoreDelta: -20, Position: "bottom-right", InteractionType: "click"},
		{StorySceneID: sceneID("3"), Label: "Tap the link", TargetVideoID: "4", DefenderScoreDelta: -10, AttackerScoreDelta: 10, Position: "bottom-left", InteractionType: "click"},
		{StorySceneID: sceneID("3"), Label: "Delete the SMS", TargetVideoID: "4", DefenderScoreDelta: 10, AttackerScoreDelta: -10, Position: "bottom-right", InteractionType: "click"},
		{StorySceneID: sceneID("4"), Label: "Fill in the card details", TargetVideoID: "4_1", DefenderScoreDelta: -30, AttackerScoreDelta: 30, Position: "bottom-left", InteractionType: "click"},
		{StorySceneID: sceneID("4"), Label: "Close the page and report it", TargetVideoID: "4_2", DefenderScoreDelta: 30, AttackerScoreDelta: -30, Position: "bottom-right", InteractionType: "click"},
	}
	return tx.Create(&options).Error
}
