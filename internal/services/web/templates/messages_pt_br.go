package templates

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Landing and login
	message.SetString(lang, "landing.tagline", "Planeje casamentos sem planilhas espalhadas. Hotéis, presentes e mensagens em um só painel.")
	message.SetString(lang, "landing.sign_in", "Entrar")
	message.SetString(lang, "login.heading", "Entre para continuar")
	message.SetString(lang, "login.email", "E-mail")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")
	message.SetString(lang, "login.error_invalid", "E-mail ou senha inválidos.")

	// Navigation
	message.SetString(lang, "nav.hotels", "Hotéis")
	message.SetString(lang, "nav.clients", "Clientes")
	message.SetString(lang, "nav.gifts", "Presentes")
	message.SetString(lang, "nav.sms", "SMS")
	message.SetString(lang, "nav.sign_out", "Sair")

	// Hotels landing
	message.SetString(lang, "hotels.title", "Blocos de Quartos")
	message.Set(lang, "hotels.client_count",
		plural.Selectf(1, "%d",
			plural.One, "Você tem %d cliente",
			plural.Other, "Você tem %d clientes"))
	message.SetString(lang, "hotels.view_clients", "Ver clientes")
	message.SetString(lang, "hotels.fallback_pick_client", "Escolha um cliente para ver os blocos de quartos.")
	message.SetString(lang, "hotels.fallback_empty", "Nenhum cliente ainda. Os blocos de quartos aparecerão quando um cliente for adicionado.")
	message.SetString(lang, "hotels.empty", "Nenhum bloco de quartos registrado para este cliente.")
	message.SetString(lang, "hotels.column_hotel", "Hotel")
	message.SetString(lang, "hotels.column_rooms", "Quartos")
	message.SetString(lang, "hotels.column_rate", "Diária")
	message.SetString(lang, "hotels.column_cutoff", "Prazo")
	message.SetString(lang, "hotels.column_notes", "Notas")

	// Clients
	message.SetString(lang, "clients.title", "Clientes")
	message.SetString(lang, "clients.empty", "Nenhum cliente ainda.")
	message.SetString(lang, "clients.column_couple", "Casal")
	message.SetString(lang, "clients.column_wedding_date", "Data do casamento")
	message.SetString(lang, "clients.column_pages", "Páginas")

	// Gifts
	message.SetString(lang, "gifts.title", "Presentes")
	message.SetString(lang, "gifts.empty", "Nenhum presente registrado para este cliente.")
	message.SetString(lang, "gifts.column_guest", "Convidado")
	message.SetString(lang, "gifts.column_description", "Presente")
	message.SetString(lang, "gifts.column_received", "Recebido em")
	message.SetString(lang, "gifts.column_thank_you", "Agradecimento")
	message.SetString(lang, "gifts.thank_you_sent", "Enviado")
	message.SetString(lang, "gifts.thank_you_pending", "Pendente")

	// SMS
	message.SetString(lang, "sms.title", "Registro de SMS")
	message.SetString(lang, "sms.empty", "Nenhuma mensagem registrada para este cliente.")
	message.SetString(lang, "sms.stat_total", "Total")
	message.SetString(lang, "sms.stat_sent", "Enviadas")
	message.SetString(lang, "sms.stat_delivered", "Entregues")
	message.SetString(lang, "sms.stat_failed", "Falhas")
	message.SetString(lang, "sms.stat_delivery_rate", "Taxa de entrega")
	message.SetString(lang, "sms.column_sent", "Enviada em")
	message.SetString(lang, "sms.column_direction", "Direção")
	message.SetString(lang, "sms.column_status", "Status")
	message.SetString(lang, "sms.column_phone", "Telefone")
	message.SetString(lang, "sms.column_body", "Mensagem")

	// Shared states
	message.SetString(lang, "loading.title", "Carregando")
	message.SetString(lang, "coming_soon.message", "Esta área está em construção. Volte em breve.")
	message.SetString(lang, "error.title", "Algo deu errado")
	message.SetString(lang, "error.generic", "Não foi possível carregar esta página.")
	message.SetString(lang, "error.retry", "Tentar novamente")
	message.SetString(lang, "not_found.title", "Página não encontrada")
	message.SetString(lang, "not_found.message", "A página que você procura não existe.")
	message.SetString(lang, "not_found.back", "Voltar ao painel")

	// Upstream failure kinds
	message.SetString(lang, "error.unauthorized", "Sua sessão expirou. Entre novamente para continuar.")
	message.SetString(lang, "error.forbidden", "Você não tem acesso a esta página.")
	message.SetString(lang, "error.not_found", "Não encontramos o que você procura.")
	message.SetString(lang, "error.unavailable", "O serviço está indisponível. Tente novamente em instantes.")
	message.SetString(lang, "error.invalid_input", "A requisição não pôde ser entendida.")
}
