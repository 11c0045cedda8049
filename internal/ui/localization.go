package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySearchMode          = "search_mode"
	KeyURLMode             = "url_mode"
	KeySearchPlaceholder   = "search_placeholder"
	KeyURLPlaceholder      = "url_placeholder"
	KeySearch              = "search"
	KeySearching           = "searching"
	KeyPreview             = "preview"
	KeyLoading             = "loading"
	KeyConvert             = "convert"
	KeyConverting          = "converting"
	KeyQuality             = "quality"
	KeySaveMP3             = "save_mp3"
	KeySaving              = "saving"
	KeyOpenInBrowser       = "open_in_browser"
	KeyCloseStatus         = "close_status"
	KeySavedTo             = "saved_to"
	KeyErrorOpeningFile    = "error_opening_file"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyServerURL           = "server_url"
	KeyDefaultQuality      = "default_quality"
	KeyDownloadDirectory   = "download_directory"
	KeyAutoReveal          = "auto_reveal"
	KeyCleanupAfterSave    = "cleanup_after_save"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyRestartForServer    = "restart_for_server"
	KeyInvalidServerURL    = "invalid_server_url"
	KeyDownloadSettings    = "download_settings"
	KeyInterfaceSettings   = "interface_settings"
	KeyConversionStatus    = "conversion_status"
	KeyVideoInformation    = "video_information"
	KeyPlaylistInformation = "playlist_information"
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

// SetLanguage sets the current language. Resolve "system" before calling;
// unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "YouTube to MP3",
		KeySearchMode:          "Search",
		KeyURLMode:             "Direct URL",
		KeySearchPlaceholder:   "Search YouTube...",
		KeyURLPlaceholder:      "Paste a YouTube video or playlist URL",
		KeySearch:              "Search",
		KeySearching:           "Searching...",
		KeyPreview:             "Preview",
		KeyLoading:             "Loading...",
		KeyConvert:             "Convert to MP3",
		KeyConverting:          "Starting...",
		KeyQuality:             "Quality",
		KeySaveMP3:             "Save MP3",
		KeySaving:              "Saving...",
		KeyOpenInBrowser:       "Open in Browser",
		KeyCloseStatus:         "Close",
		KeySavedTo:             "Saved to",
		KeyErrorOpeningFile:    "Error opening file",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyServerURL:           "Server URL",
		KeyDefaultQuality:      "Default Quality",
		KeyDownloadDirectory:   "Download Directory",
		KeyAutoReveal:          "Show saved file in file manager",
		KeyCleanupAfterSave:    "Delete server files after saving",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartForServer:    "The new server address is used after restart.",
		KeyInvalidServerURL:    "Invalid server URL",
		KeyDownloadSettings:    "Download Settings",
		KeyInterfaceSettings:   "Interface Settings",
		KeyConversionStatus:    "Conversion Status",
		KeyVideoInformation:    "Video Information",
		KeyPlaylistInformation: "Playlist Information",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "YouTube в MP3",
		KeySearchMode:          "Поиск",
		KeyURLMode:             "Ссылка",
		KeySearchPlaceholder:   "Искать на YouTube...",
		KeyURLPlaceholder:      "Вставьте ссылку на видео или плейлист YouTube",
		KeySearch:              "Найти",
		KeySearching:           "Поиск...",
		KeyPreview:             "Просмотр",
		KeyLoading:             "Загрузка...",
		KeyConvert:             "Конвертировать в MP3",
		KeyConverting:          "Запуск...",
		KeyQuality:             "Качество",
		KeySaveMP3:             "Сохранить MP3",
		KeySaving:              "Сохранение...",
		KeyOpenInBrowser:       "Открыть в браузере",
		KeyCloseStatus:         "Закрыть",
		KeySavedTo:             "Сохранено в",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyServerURL:           "Адрес сервера",
		KeyDefaultQuality:      "Качество по умолчанию",
		KeyDownloadDirectory:   "Папка загрузки",
		KeyAutoReveal:          "Показывать файл в файловом менеджере",
		KeyCleanupAfterSave:    "Удалять файлы на сервере после сохранения",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartForServer:    "Новый адрес сервера будет использован после перезапуска.",
		KeyInvalidServerURL:    "Неверный адрес сервера",
		KeyDownloadSettings:    "Настройки загрузки",
		KeyInterfaceSettings:   "Настройки интерфейса",
		KeyConversionStatus:    "Статус конвертации",
		KeyVideoInformation:    "Информация о видео",
		KeyPlaylistInformation: "Информация о плейлисте",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "YouTube para MP3",
		KeySearchMode:          "Pesquisa",
		KeyURLMode:             "URL direta",
		KeySearchPlaceholder:   "Pesquisar no YouTube...",
		KeyURLPlaceholder:      "Cole a URL de um vídeo ou playlist do YouTube",
		KeySearch:              "Pesquisar",
		KeySearching:           "Pesquisando...",
		KeyPreview:             "Visualizar",
		KeyLoading:             "Carregando...",
		KeyConvert:             "Converter para MP3",
		KeyConverting:          "Iniciando...",
		KeyQuality:             "Qualidade",
		KeySaveMP3:             "Salvar MP3",
		KeySaving:              "Salvando...",
		KeyOpenInBrowser:       "Abrir no navegador",
		KeyCloseStatus:         "Fechar",
		KeySavedTo:             "Salvo em",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyServerURL:           "URL do servidor",
		KeyDefaultQuality:      "Qualidade padrão",
		KeyDownloadDirectory:   "Diretório de Download",
		KeyAutoReveal:          "Mostrar arquivo salvo no gerenciador",
		KeyCleanupAfterSave:    "Apagar arquivos do servidor após salvar",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartForServer:    "O novo endereço do servidor será usado após reiniciar.",
		KeyInvalidServerURL:    "URL do servidor inválida",
		KeyDownloadSettings:    "Configurações de download",
		KeyInterfaceSettings:   "Configurações da interface",
		KeyConversionStatus:    "Status da conversão",
		KeyVideoInformation:    "Informações do vídeo",
		KeyPlaylistInformation: "Informações da playlist",
	}
}
