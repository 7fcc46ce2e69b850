package services

import (
	"time"

	"coursemaster/model"
)

// TemplateService builds the bundled "Curso em Vídeo" JavaScript course so a
// fresh install has something real to track without an AI credential.
type TemplateService struct{}

// NewTemplateService creates a new template service
func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

// Generate builds the template course scheduled starting today
func (s *TemplateService) Generate() model.Course {
	return s.generateAt(time.Now())
}

// atNoon pins the clock time of a schedule slot to 12:00
func atNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// nextStudyDay advances the scheduler one study day, skipping weekends:
// Friday jumps 3 days to Monday, Saturday jumps 2, anything else moves 1.
func nextStudyDay(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Friday:
		date = date.AddDate(0, 0, 3)
	case time.Saturday:
		date = date.AddDate(0, 0, 2)
	default:
		date = date.AddDate(0, 0, 1)
	}
	return atNoon(date)
}

func (s *TemplateService) generateAt(now time.Time) model.Course {
	// First lesson lands today at noon, unless today is a weekend day, in
	// which case it is pushed to the following Monday.
	scheduler := atNoon(now)
	if scheduler.Weekday() == time.Saturday {
		scheduler = scheduler.AddDate(0, 0, 2)
	}
	if scheduler.Weekday() == time.Sunday {
		scheduler = scheduler.AddDate(0, 0, 1)
	}

	lesson := func(title, duration, videoID, description string) model.Lesson {
		l := model.Lesson{
			ID:            model.NewID(),
			Title:         title,
			Duration:      duration,
			Completed:     false,
			Content:       description,
			VideoURL:      "https://www.youtube.com/embed/" + videoID,
			ScheduledDate: scheduler.Format(time.RFC3339),
		}
		// Advance the scheduler for the next lesson right away
		scheduler = nextStudyDay(scheduler)
		return l
	}

	modules := []model.Module{
		{
			ID:    model.NewID(),
			Title: "Módulo A: Conhecendo o JavaScript",
			Lessons: []model.Lesson{
				lesson("Aula 01: O que o JavaScript faz?", "30 min", "Ptbk2af68e8", "História e capacidades da linguagem. Entenda como o JS funciona no navegador e no servidor."),
				lesson("Aula 02: Preparando o Ambiente", "35 min", "r7K5k5c401w", "Instalação do Node.js e VSCode. Configurando as extensões essenciais."),
				lesson("Aula 03: Dando os primeiros passos", "25 min", "VbX9z6XCgfE", "Primeiros comandos no console e Node. Variáveis e output básico."),
				lesson("Aula 04: Minha primeira aplicação", "40 min", "OJ1Wp2m688U", "Criando o 'Olá, Mundo!' em HTML+JS. Interação básica com janelas."),
			},
		},
		{
			ID:    model.NewID(),
			Title: "Módulo B: Comandos Básicos",
			Lessons: []model.Lesson{
				lesson("Aula 05: Variáveis e Tipos Primitivos", "35 min", "bXqV5x25N4w", "String, Number, Boolean, undefined, null. Como declarar e usar."),
				lesson("Aula 06: Tratamento de dados", "40 min", "oj8v12f2o78", "Manipulação de strings e números. Conversão de tipos (ParseInt, ParseFloat)."),
				lesson("Aula 07: Operadores Aritméticos", "35 min", "VfBNz668wUc", "Soma, subtração, multiplicação, divisão, resto, potência e precedência."),
				lesson("Aula 08: Operadores Relacionais e Lógicos", "35 min", "BP63WWBl6Wk", "Maior, menor, igual, AND, OR, NOT. Tabela verdade."),
			},
		},
		{
			ID:    model.NewID(),
			Title: "Módulo C: Entendendo o DOM",
			Lessons: []model.Lesson{
				lesson("Aula 09: Introdução ao DOM", "30 min", "WWZX8MK3hKg", "Árvore DOM, seleção por Marca, ID, Nome e Classe."),
				lesson("Aula 10: Eventos DOM", "35 min", "wWn8pXN6G74", "Click, Mouseenter, Mouseout e Listeners. Funções disparadas por eventos."),
			},
		},
		{
			ID:    model.NewID(),
			Title: "Módulo D: Condições",
			Lessons: []model.Lesson{
				lesson("Aula 11: Condições Simples", "30 min", "I6GtMbSEv1c", "Estrutura if/else básica. Condições no console."),
				lesson("Aula 12: Condições Compostas", "40 min", "EEbT4yHXWlY", "Condições aninhadas e if else if. Switch Case."),
				lesson("Aula 12ex: Exercício Hora do Dia", "45 min", "XD3d8i8cWwc", "Prática: Criando um script que muda a foto e a cor do fundo conforme a hora."),
			},
		},
		{
			ID:    model.NewID(),
			Title: "Módulo E: Repetições",
			Lessons: []model.Lesson{
				lesson("Aula 13: While e Do While", "30 min", "5rZqYPKIWKY", "Estruturas de repetição com teste lógico no início e no final."),
				lesson("Aula 14: Estrutura For", "30 min", "eX-bDhspMtA", "Estrutura de repetição com variável de controle. Depuração."),
			},
		},
		{
			ID:    model.NewID(),
			Title: "Módulo F: Avançando",
			Lessons: []model.Lesson{
				lesson("Aula 15: Variáveis Compostas (Arrays)", "40 min", "XdkW62tkAgU", "Vetores, índices, adição de chaves e percurso em vetores."),
				lesson("Aula 16: Funções", "35 min", "mc3qtERhZKg", "Criando funções com parâmetros e retorno. Chamada de funções."),
				lesson("Aula 17: Objetos", "35 min", "LZkN9054Dnw", "Introdução a Objetos em JS. Atributos e métodos."),
			},
		},
	}

	course := model.Course{
		ID:          model.NewID(),
		Title:       "JavaScript - Curso em Vídeo",
		Description: "O lendário curso de JavaScript do Gustavo Guanabara. Aprenda do zero ao avançado com foco em DOM e ECMAScript.",
		Category:    "Programação",
		ImageURL:    "https://i.ytimg.com/vi/BXqUH86F-kA/maxresdefault.jpg",
		CreatedAt:   now.Format(time.RFC3339),
		Modules:     modules,
	}

	return model.CalculateProgress(course)
}
