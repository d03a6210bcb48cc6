package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyHeader              = "header"
	KeyTabPrepare          = "tab_prepare"
	KeyTabTraining         = "tab_training"
	KeyTabPrediction       = "tab_prediction"
	KeyImportOddTraining   = "import_odd_training"
	KeyImportEvenTraining  = "import_even_training"
	KeyImportOddDenoising  = "import_odd_denoising"
	KeyImportEvenDenoising = "import_even_denoising"
	KeyGenerateFormat      = "generate_format"
	KeyPrepareData         = "prepare_data"
	KeyRunTraining         = "run_training"
	KeyRunPrediction       = "run_prediction"
	KeyOddSelected         = "odd_selected"
	KeyEvenSelected        = "even_selected"
	KeySelectOddTitle      = "select_odd_title"
	KeySelectEvenTitle     = "select_even_title"
	KeySaveTitleFormat     = "save_title_format"
	KeySelectConfigFormat  = "select_config_format"
	KeySuccess             = "success"
	KeyGeneratedFormat     = "generated_format"
	KeyExtractionDone      = "extraction_done"
	KeyTrainingDone        = "training_done"
	KeyPredictionDone      = "prediction_done"
	KeyExtractionFailed    = "extraction_failed"
	KeyTrainingFailed      = "training_failed"
	KeyPredictionFailed    = "prediction_failed"
	KeyNoValidFiles        = "no_valid_files"
	KeyStageBusy           = "stage_busy"
	KeyAbout               = "about"
	KeyAboutText           = "about_text"
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyOpenWorkingFolder   = "open_working_folder"
	KeyAddFiles            = "add_files"
	KeyClearAll            = "clear_all"
	KeyUseSelected         = "use_selected"
	KeyCancel              = "cancel"
	KeyFilesPickedFormat   = "files_picked_format"
	KeyPickerHint          = "picker_hint"
	KeyToolsDirectory      = "tools_directory"
	KeyWorkingDirectory    = "working_directory"
	KeyUsePath             = "use_path"
	KeyCurrentDirectory    = "current_directory"
	KeyBrowse              = "browse"
	KeySave                = "save"
	KeySettingsSaved       = "settings_saved"
	KeyRunningFormat       = "running_format"
	KeyErrorOpeningFolder  = "error_opening_folder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage derives a two-letter code from the POSIX locale variables
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "CryoCARE - setup",
		KeyHeader:              "CryoCARE - SETUP",
		KeyTabPrepare:          "Prepare Training Data",
		KeyTabTraining:         "Run Training",
		KeyTabPrediction:       "Run Predictions",
		KeyImportOddTraining:   "Import Odd Files for Training",
		KeyImportEvenTraining:  "Import Even Files for Training",
		KeyImportOddDenoising:  "Import Odd Files for Denoising",
		KeyImportEvenDenoising: "Import Even Files for Denoising",
		KeyGenerateFormat:      "Generate %s",
		KeyPrepareData:         "Prepare Training Data",
		KeyRunTraining:         "Run Training",
		KeyRunPrediction:       "Run Prediction",
		KeyOddSelected:         "Odd Files Selected: ",
		KeyEvenSelected:        "Even Files Selected: ",
		KeySelectOddTitle:      "Select odd files",
		KeySelectEvenTitle:     "Select even files",
		KeySaveTitleFormat:     "Save %s",
		KeySelectConfigFormat:  "Select %s",
		KeySuccess:             "Success",
		KeyGeneratedFormat:     "%s has been generated and saved successfully.",
		KeyExtractionDone:      "Prepare training data completed successfully.",
		KeyTrainingDone:        "Training completed successfully.",
		KeyPredictionDone:      "Prediction completed successfully.",
		KeyExtractionFailed:    "Failed to prepare training data",
		KeyTrainingFailed:      "Failed to complete training",
		KeyPredictionFailed:    "Failed to complete prediction",
		KeyNoValidFiles:        "No valid files selected (accepted: .mrc, .tif).",
		KeyStageBusy:           "Another stage is already running.",
		KeyAbout:               "About",
		KeyAboutText:           "This graphical interface helps you configure and launch the CryoCARE pipeline. It was written by Tom CREY, M1 intern at IBS and LPCV.",
		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyOpenWorkingFolder:   "Open Working Folder",
		KeyAddFiles:            "Add File...",
		KeyClearAll:            "Clear All",
		KeyUseSelected:         "Use Selected Files",
		KeyCancel:              "Cancel",
		KeyFilesPickedFormat:   "%d file(s) picked",
		KeyPickerHint:          "Add the files to import. Files without a .mrc or .tif extension are ignored.",
		KeyToolsDirectory:      "Tools Directory",
		KeyWorkingDirectory:    "Working Directory",
		KeyUsePath:             "Empty: search PATH",
		KeyCurrentDirectory:    "Empty: current directory",
		KeyBrowse:              "Browse",
		KeySave:                "Save",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRunningFormat:       "%s is running...",
		KeyErrorOpeningFolder:  "Error opening folder",
	}

	l.texts["fr"] = map[string]string{
		KeyAppTitle:            "CryoCARE - configuration",
		KeyHeader:              "CryoCARE - CONFIGURATION",
		KeyTabPrepare:          "Préparer les données",
		KeyTabTraining:         "Entraînement",
		KeyTabPrediction:       "Prédictions",
		KeyImportOddTraining:   "Importer les fichiers impairs pour l'entraînement",
		KeyImportEvenTraining:  "Importer les fichiers pairs pour l'entraînement",
		KeyImportOddDenoising:  "Importer les fichiers impairs pour le débruitage",
		KeyImportEvenDenoising: "Importer les fichiers pairs pour le débruitage",
		KeyGenerateFormat:      "Générer %s",
		KeyPrepareData:         "Préparer les données d'entraînement",
		KeyRunTraining:         "Lancer l'entraînement",
		KeyRunPrediction:       "Lancer la prédiction",
		KeyOddSelected:         "Fichiers impairs sélectionnés : ",
		KeyEvenSelected:        "Fichiers pairs sélectionnés : ",
		KeySelectOddTitle:      "Sélectionner les fichiers impairs",
		KeySelectEvenTitle:     "Sélectionner les fichiers pairs",
		KeySaveTitleFormat:     "Enregistrer %s",
		KeySelectConfigFormat:  "Sélectionner %s",
		KeySuccess:             "Succès",
		KeyGeneratedFormat:     "%s a été généré et enregistré avec succès.",
		KeyExtractionDone:      "Préparation des données d'entraînement terminée.",
		KeyTrainingDone:        "Entraînement terminé.",
		KeyPredictionDone:      "Prédiction terminée.",
		KeyExtractionFailed:    "Échec de la préparation des données",
		KeyTrainingFailed:      "Échec de l'entraînement",
		KeyPredictionFailed:    "Échec de la prédiction",
		KeyNoValidFiles:        "Aucun fichier valide sélectionné (acceptés : .mrc, .tif).",
		KeyStageBusy:           "Une autre étape est déjà en cours.",
		KeyAbout:               "À propos",
		KeyAboutText:           "Cette interface graphique a pour objectif de vous aider à configurer et lancer la pipeline CryoCARE. Elle a été réalisée par Tom CREY, stagiaire M1 à l'IBS et au LPCV.",
		KeyFile:                "Fichier",
		KeySettings:            "Paramètres",
		KeyLanguage:            "Langue",
		KeyOpenWorkingFolder:   "Ouvrir le dossier de travail",
		KeyAddFiles:            "Ajouter un fichier...",
		KeyClearAll:            "Tout effacer",
		KeyUseSelected:         "Utiliser la sélection",
		KeyCancel:              "Annuler",
		KeyFilesPickedFormat:   "%d fichier(s) choisi(s)",
		KeyPickerHint:          "Ajoutez les fichiers à importer. Les fichiers sans extension .mrc ou .tif sont ignorés.",
		KeyToolsDirectory:      "Dossier des outils",
		KeyWorkingDirectory:    "Dossier de travail",
		KeyUsePath:             "Vide : recherche dans le PATH",
		KeyCurrentDirectory:    "Vide : dossier courant",
		KeyBrowse:              "Parcourir",
		KeySave:                "Enregistrer",
		KeySettingsSaved:       "Paramètres enregistrés !",
		KeyRunningFormat:       "%s en cours...",
		KeyErrorOpeningFolder:  "Erreur à l'ouverture du dossier",
	}
}
