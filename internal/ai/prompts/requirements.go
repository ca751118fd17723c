package prompts

import "fmt"

// SystemPrompt is sent with every request of the pipeline.
const SystemPrompt = "You are a helpful AI assistant that writes software requirements and generates code following specific formatting instructions."

// FunctionalRequirements builds the first-stage prompt from the user's product description.
func FunctionalRequirements(userInput string) string {
	prompt := `
You are a world-renowned product manager who creates highly efficient product documents with minimal margin of error. Your task is to create a detailed requirements document for an internal tool or ERP-style web application based on the user's input. The resulting document should be thorough, covering all major aspects, including features, user roles, user types, and business logic, but should focus specifically on a single regular user perspective to make the document more relatable for a regular user.

User Input: %s

Based on the provided user input, generate a requirements document with the following structure:

1. Introduction and Overview:
   - Describe the purpose and key objectives of the web application from a regular user's point of view.

2. User Stories:
   - Focus on the needs and actions of a single regular user
   - Define the main tasks that the regular user needs to perform in the application

3. User Types:
   - Describe the regular user type and the access they have
   - Avoid administrative roles

4. Functional Requirements:
   - Detail each core feature with specifications and expected behaviors
   - State the business logic behind each feature

5. UI/UX Details:
   - Left side menu with navigation to major sections
   - Application title on top of the screen
   - Consistent layout across all pages and a default landing page
   - Component details (tables, forms, buttons, cards, lists) and interaction flows
   - Theme details (color scheme, typography, spacing, alignments)

6. Database Details:
   - User, master, transaction, view and translation tables
   - Relationships between tables

Out of scope:
- Login/authentication features
- Administrative user flows
- Security features
`
	return fmt.Sprintf(prompt, userInput)
}

// TechnicalRequirements turns the functional document into a phased technical plan.
func TechnicalRequirements(functionalRequirements string) string {
	prompt := `
You are a senior technical architect tasked with converting functional requirements into detailed technical specifications developers can follow to build the application.

Functional Requirements Input:
%s

Please provide technical specifications in the following format:

1. Technology Stack:
   - Database: SQLite3 with Knex.js
   - Frontend: React with Material UI (latest version)
   - Backend: Node.js with Express

2. Phase 1 - Database Implementation:
   - Folder structure, database setup and configuration
   - Table creation scripts, data relationships and initial data seeding

3. Phase 2 - Backend API:
   - API endpoint structure and request/response formats
   - Business logic, error handling and CORS configuration

4. Phase 3 - Frontend Implementation:
   - Component hierarchy, state management and routing
   - API integration and UI/UX implementation

For each phase, include the folder structure, file specifications, required dependencies, setup instructions and common pitfalls to avoid.
`
	return fmt.Sprintf(prompt, functionalRequirements)
}
